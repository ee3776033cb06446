package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rentdesk/rentdesk/client"
)

func newLeaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lease",
		Short: "Manage leases",
	}
	cmd.AddCommand(leaseListCmd())
	cmd.AddCommand(leaseGetCmd())
	cmd.AddCommand(leaseCreateCmd())
	cmd.AddCommand(leaseUpdateCmd())
	cmd.AddCommand(leaseDeleteCmd())
	return cmd
}

func leaseListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List leases",
		Run: func(cmd *cobra.Command, args []string) {
			leases, err := apiClient.Leases.List(context.Background())
			if err != nil {
				fatal("list leases", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "TENANT", "PROPERTY", "START", "END", "RENT", "STATUS"}
				var rows [][]string
				for _, l := range leases {
					rows = append(rows, []string{l.ID, l.TenantID, l.PropertyID, l.StartDate, l.EndDate, money(l.MonthlyRent), l.Status})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, l := range leases {
					fmt.Println(l.ID)
				}
				return
			}
			output(leases, "")
		},
	}
}

func leaseGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a lease by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			lease, err := apiClient.Leases.Get(context.Background(), args[0])
			if err != nil {
				fatal("get lease", err)
			}
			output(lease, lease.ID)
		},
	}
}

func leaseCreateCmd() *cobra.Command {
	var req client.CreateLeaseRequest
	var noPayments bool
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a lease",
		Run: func(cmd *cobra.Command, args []string) {
			if noPayments {
				f := false
				req.GeneratePayments = &f
			}
			lease, err := apiClient.Leases.Create(context.Background(), &req)
			if err != nil {
				fatal("create lease", err)
			}
			output(lease, lease.ID)
		},
	}
	cmd.Flags().StringVar(&req.TenantID, "tenant", "", "Tenant ID")
	cmd.Flags().StringVar(&req.PropertyID, "property", "", "Property ID")
	cmd.Flags().StringVar(&req.StartDate, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.EndDate, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&req.MonthlyRent, "rent", 0, "Monthly rent amount")
	cmd.Flags().Float64Var(&req.SecurityDeposit, "deposit", 0, "Security deposit")
	cmd.Flags().StringVar(&req.Status, "status", "", "Status (ACTIVE|PENDING|EXPIRED|TERMINATED)")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "Notes")
	cmd.Flags().BoolVar(&noPayments, "no-payments", false, "Skip generating monthly rent payments")
	return cmd
}

func leaseUpdateCmd() *cobra.Command {
	var status, start, end, notes string
	var rent float64
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a lease",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.UpdateLeaseRequest{}
			if cmd.Flags().Changed("status") {
				req.Status = &status
			}
			if cmd.Flags().Changed("start") {
				req.StartDate = &start
			}
			if cmd.Flags().Changed("end") {
				req.EndDate = &end
			}
			if cmd.Flags().Changed("rent") {
				req.MonthlyRent = &rent
			}
			if cmd.Flags().Changed("notes") {
				req.Notes = &notes
			}
			lease, err := apiClient.Leases.Update(context.Background(), args[0], req)
			if err != nil {
				fatal("update lease", err)
			}
			output(lease, lease.ID)
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Status (ACTIVE|PENDING|EXPIRED|TERMINATED)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&rent, "rent", 0, "Monthly rent amount")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	return cmd
}

func leaseDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a lease and its payments",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Leases.Delete(context.Background(), args[0]); err != nil {
				fatal("delete lease", err)
			}
			fmt.Println("deleted")
		},
	}
}
