package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rentdesk/rentdesk/client"
)

func newTenantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenant",
		Short: "Manage tenants",
	}
	cmd.AddCommand(tenantListCmd())
	cmd.AddCommand(tenantGetCmd())
	cmd.AddCommand(tenantCreateCmd())
	cmd.AddCommand(tenantUpdateCmd())
	cmd.AddCommand(tenantDeleteCmd())
	return cmd
}

func tenantListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tenants",
		Run: func(cmd *cobra.Command, args []string) {
			tenants, err := apiClient.Tenants.List(context.Background())
			if err != nil {
				fatal("list tenants", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "NAME", "EMAIL", "PHONE"}
				var rows [][]string
				for _, t := range tenants {
					rows = append(rows, []string{t.ID, t.FirstName + " " + t.LastName, t.Email, t.Phone})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, t := range tenants {
					fmt.Println(t.ID)
				}
				return
			}
			output(tenants, "")
		},
	}
}

func tenantGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a tenant by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			tenant, err := apiClient.Tenants.Get(context.Background(), args[0])
			if err != nil {
				fatal("get tenant", err)
			}
			output(tenant, tenant.ID)
		},
	}
}

func tenantCreateCmd() *cobra.Command {
	var req client.CreateTenantRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a tenant",
		Run: func(cmd *cobra.Command, args []string) {
			tenant, err := apiClient.Tenants.Create(context.Background(), &req)
			if err != nil {
				fatal("create tenant", err)
			}
			output(tenant, tenant.ID)
		},
	}
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&req.EmergencyContactName, "emergency-name", "", "Emergency contact name")
	cmd.Flags().StringVar(&req.EmergencyContactPhone, "emergency-phone", "", "Emergency contact phone")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "Notes")
	return cmd
}

func tenantUpdateCmd() *cobra.Command {
	var firstName, lastName, email, phone, notes string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a tenant",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.UpdateTenantRequest{}
			if cmd.Flags().Changed("first-name") {
				req.FirstName = &firstName
			}
			if cmd.Flags().Changed("last-name") {
				req.LastName = &lastName
			}
			if cmd.Flags().Changed("email") {
				req.Email = &email
			}
			if cmd.Flags().Changed("phone") {
				req.Phone = &phone
			}
			if cmd.Flags().Changed("notes") {
				req.Notes = &notes
			}
			tenant, err := apiClient.Tenants.Update(context.Background(), args[0], req)
			if err != nil {
				fatal("update tenant", err)
			}
			output(tenant, tenant.ID)
		},
	}
	cmd.Flags().StringVar(&firstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	return cmd
}

func tenantDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a tenant",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Tenants.Delete(context.Background(), args[0]); err != nil {
				fatal("delete tenant", err)
			}
			fmt.Println("deleted")
		},
	}
}
