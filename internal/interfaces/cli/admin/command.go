package admin

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"punchcard/internal/application/user/usecases"
	"punchcard/internal/infrastructure/auth"
	"punchcard/internal/infrastructure/config"
	"punchcard/internal/infrastructure/database"
	"punchcard/internal/infrastructure/repository"
	"punchcard/internal/shared/authorization"
	"punchcard/internal/shared/biztime"
	"punchcard/internal/shared/logger"
)

var (
	env      string
	username string
	email    string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative tools",
		Long:  `Administrative commands that operate directly on the database, bypassing the HTTP API.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newCreateAdminCommand())

	return cmd
}

func newCreateAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		Long:  `Create an admin account interactively. The password is read from the terminal without echo.`,
		RunE:  runCreateAdmin,
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username for the admin account (required)")
	cmd.Flags().StringVarP(&email, "email", "m", "", "Email for the admin account (required)")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("email")

	return cmd
}

func runCreateAdmin(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	if err := biztime.Init(cfg.Attendance.Timezone); err != nil {
		return fmt.Errorf("failed to initialize office timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	password, err := promptPassword()
	if err != nil {
		return err
	}

	userRepo := repository.NewUserRepository(database.Get())
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	createUser := usecases.NewCreateUserUseCase(userRepo, hasher, logger.NewLogger())

	result, err := createUser.Execute(context.Background(), usecases.CreateUserCommand{
		Username: username,
		Email:    email,
		Password: password,
		Role:     string(authorization.RoleAdmin),
	})
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	fmt.Printf("Admin account '%s' created (id=%d)\n", result.User.Username, result.User.ID)
	return nil
}

func promptPassword() (string, error) {
	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password confirmation: %w", err)
	}

	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}

	return string(password), nil
}
