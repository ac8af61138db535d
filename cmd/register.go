package cmd

import (
	"github.com/spf13/cobra"

	"github.com/anandita/storefront/user/pkg/request"
)

func newRegisterCommand(a *app) *cobra.Command {
	var param request.Register

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.users.Register(cmd.Context(), param)
		},
	}
	cmd.Flags().StringVar(&param.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&param.Email, "email", "", "email address")
	cmd.Flags().StringVar(&param.Password, "password", "", "password, at least 6 characters")
	cmd.Flags().StringVar(&param.ConfirmPassword, "confirm-password", "", "repeat the password")
	cmd.Flags().StringVar(&param.Phone, "phone", "", "phone number")
	return cmd
}
