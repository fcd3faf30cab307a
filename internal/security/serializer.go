package security

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"gorm.io/gorm/schema"
)

// SerializerName is used in struct tags: `gorm:"serializer:encrypted"`.
const SerializerName = "encrypted"

var (
	activeMu  sync.RWMutex
	activeBox *Box
)

func init() {
	schema.RegisterSerializer(SerializerName, EncryptedSerializer{})
}

// Configure installs the box used by the encrypted serializer. Passing nil
// stores new values in plaintext.
func Configure(b *Box) {
	activeMu.Lock()
	defer activeMu.Unlock()
	activeBox = b
}

func currentBox() *Box {
	activeMu.RLock()
	defer activeMu.RUnlock()
	return activeBox
}

// EncryptedSerializer encrypts string fields on write and decrypts on read,
// so in-memory models only ever hold plaintext.
type EncryptedSerializer struct{}

func (EncryptedSerializer) Scan(ctx context.Context, field *schema.Field, dst reflect.Value, dbValue interface{}) error {
	var stored string
	switch v := dbValue.(type) {
	case nil:
	case string:
		stored = v
	case []byte:
		stored = string(v)
	default:
		return fmt.Errorf("encrypted serializer: unsupported db value %T", dbValue)
	}

	plain := stored
	if strings.HasPrefix(stored, Prefix) {
		box := currentBox()
		if box == nil {
			return ErrNoKey
		}
		var err error
		if plain, err = box.Decrypt(stored); err != nil {
			return err
		}
	}

	field.ReflectValueOf(ctx, dst).SetString(plain)
	return nil
}

func (EncryptedSerializer) Value(ctx context.Context, field *schema.Field, dst reflect.Value, fieldValue interface{}) (interface{}, error) {
	plain, ok := fieldValue.(string)
	if !ok {
		return nil, fmt.Errorf("encrypted serializer: unsupported field type %T", fieldValue)
	}
	if plain == "" {
		return "", nil
	}

	box := currentBox()
	if box == nil {
		return plain, nil
	}
	return box.Encrypt(plain)
}
