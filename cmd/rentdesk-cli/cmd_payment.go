package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rentdesk/rentdesk/client"
)

func newPaymentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Manage payments",
	}
	cmd.AddCommand(paymentListCmd())
	cmd.AddCommand(paymentGetCmd())
	cmd.AddCommand(paymentCreateCmd())
	cmd.AddCommand(paymentUpdateCmd())
	cmd.AddCommand(paymentDeleteCmd())
	cmd.AddCommand(paymentMarkPaidCmd())
	return cmd
}

func paymentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List payments",
		Run: func(cmd *cobra.Command, args []string) {
			payments, err := apiClient.Payments.List(context.Background())
			if err != nil {
				fatal("list payments", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "LEASE", "AMOUNT", "TYPE", "STATUS", "DUE"}
				var rows [][]string
				for _, p := range payments {
					rows = append(rows, []string{p.ID, p.LeaseID, money(p.Amount), p.Type, p.Status, p.DueDate})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, p := range payments {
					fmt.Println(p.ID)
				}
				return
			}
			output(payments, "")
		},
	}
}

func paymentGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a payment by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			payment, err := apiClient.Payments.Get(context.Background(), args[0])
			if err != nil {
				fatal("get payment", err)
			}
			output(payment, payment.ID)
		},
	}
}

func paymentCreateCmd() *cobra.Command {
	var req client.CreatePaymentRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a payment",
		Run: func(cmd *cobra.Command, args []string) {
			payment, err := apiClient.Payments.Create(context.Background(), &req)
			if err != nil {
				fatal("create payment", err)
			}
			output(payment, payment.ID)
		},
	}
	cmd.Flags().StringVar(&req.LeaseID, "lease", "", "Lease ID")
	cmd.Flags().StringVar(&req.TenantID, "tenant", "", "Tenant ID")
	cmd.Flags().Float64Var(&req.Amount, "amount", 0, "Payment amount")
	cmd.Flags().StringVar(&req.Type, "type", "", "Type (RENT|LATE_FEE|DEPOSIT|UTILITY|OTHER)")
	cmd.Flags().StringVar(&req.Status, "status", "", "Status (PENDING|PAID|OVERDUE|CANCELLED)")
	cmd.Flags().StringVar(&req.DueDate, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "Notes")
	return cmd
}

func paymentUpdateCmd() *cobra.Command {
	var status, due, paid, method, notes string
	var amount float64
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a payment",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.UpdatePaymentRequest{}
			if cmd.Flags().Changed("status") {
				req.Status = &status
			}
			if cmd.Flags().Changed("due") {
				req.DueDate = &due
			}
			if cmd.Flags().Changed("paid-date") {
				req.PaidDate = &paid
			}
			if cmd.Flags().Changed("method") {
				req.Method = &method
			}
			if cmd.Flags().Changed("amount") {
				req.Amount = &amount
			}
			if cmd.Flags().Changed("notes") {
				req.Notes = &notes
			}
			payment, err := apiClient.Payments.Update(context.Background(), args[0], req)
			if err != nil {
				fatal("update payment", err)
			}
			output(payment, payment.ID)
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Status (PENDING|PAID|OVERDUE|CANCELLED)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&paid, "paid-date", "", "Paid date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&method, "method", "", "Payment method")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Payment amount")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	return cmd
}

func paymentMarkPaidCmd() *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "mark-paid <id>",
		Short: "Mark a payment as paid",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			status := "PAID"
			req := &client.UpdatePaymentRequest{Status: &status}
			if method != "" {
				req.Method = &method
			}
			payment, err := apiClient.Payments.Update(context.Background(), args[0], req)
			if err != nil {
				fatal("mark payment paid", err)
			}
			output(payment, payment.ID)
		},
	}
	cmd.Flags().StringVar(&method, "method", "", "Payment method")
	return cmd
}

func paymentDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a payment",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Payments.Delete(context.Background(), args[0]); err != nil {
				fatal("delete payment", err)
			}
			fmt.Println("deleted")
		},
	}
}
