package main

import (
	"context"
	"fmt"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/activity"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/user"
	"github.com/gin-gonic/gin/binding"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newCreateUserCmd(a *app) *cobra.Command {
	var request user.CreateUserRequest

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a back-office account",
		Long: `Create a back-office account. Use this to bootstrap the first admin,
since the users API itself requires an admin token.`,
		Example: "  admin create-user --email ops@tour.example --name 운영자 --role admin --password 'change-me-now'",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.database()
			if err != nil {
				return err
			}
			id, err := createUser(cmd.Context(), db, &request)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user id=%d email=%s role=%s\n", id, request.Email, request.Role)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&request.Email, "email", "", "login email")
	flags.StringVar(&request.Name, "name", "", "display name")
	flags.StringVar(&request.Role, "role", model.RoleEditor, "admin or editor")
	flags.StringVar(&request.Password, "password", "", "initial password (8-72 characters)")
	flags.StringVar(&request.PhoneNumber, "phone", "", "mobile number")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// createUser applies the same validation as POST /api/v1/users
func createUser(ctx context.Context, db *gorm.DB, request *user.CreateUserRequest) (uint32, error) {
	if err := binding.Validator.ValidateStruct(request); err != nil {
		return 0, fmt.Errorf("입력값 오류: %w", err)
	}

	service := user.NewUserService(db, user.NewUserRepository(), newRecorder(db))
	return service.Create(ctx, request)
}

func newRecorder(db *gorm.DB) activity.Recorder {
	return activity.NewActivityService(db, activity.NewActivityRepository())
}
