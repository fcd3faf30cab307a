package main

import (
	"encoding/json"
	"fmt"
	"time"

	"football-club/matchday/internal/auth"
	"football-club/matchday/internal/constants"
	"football-club/matchday/internal/seed"

	"github.com/spf13/cobra"
)

var (
	tokenMember string
	tokenClub   string
	tokenRole   string
	tokenTTL    time.Duration

	seedFile string

	previewMatch string
	previewType  string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for a member",
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens := auth.NewTokenService([]byte(cfg.JWTSecret))
		tok, err := tokens.Issue(tokenMember, tokenClub, constants.MemberRole(tokenRole), tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create clubs, members, seasons and templates from a YAML file",
	Long: `Seed applies a YAML file of clubs. Records that already exist are
left untouched, so the same file can be applied repeatedly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := seed.Load(seedFile)
		if err != nil {
			return err
		}
		rt, err := openRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		report, err := seed.Apply(cmd.Context(), rt.Deps, f)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "clubs=%d members=%d seasons=%d memberships=%d templates=%d\n",
			report.Clubs, report.Members, report.Seasons, report.Memberships, report.Templates)
		return nil
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the notification text a match would get right now",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		text, err := rt.Deps.Services.Notifications.Preview(cmd.Context(), previewMatch, constants.NotificationType(previewType))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

var runDeadlinesCmd = &cobra.Command{
	Use:   "run-deadlines",
	Short: "Run one deadline scheduler pass and print its summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		summary, err := rt.Jobs.Deadline.RunOnce(cmd.Context())
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenMember, "member", "", "member id")
	tokenCmd.Flags().StringVar(&tokenClub, "club", "", "club id")
	tokenCmd.Flags().StringVar(&tokenRole, "role", string(constants.RoleMember), "MEMBER, MANAGER or ADMIN")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("member")

	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "seed.yaml", "seed file")

	previewCmd.Flags().StringVar(&previewMatch, "match", "", "match id")
	previewCmd.Flags().StringVar(&previewType, "type", string(constants.NotificationManual), "notification type")
	_ = previewCmd.MarkFlagRequired("match")
}
