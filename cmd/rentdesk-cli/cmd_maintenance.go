package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rentdesk/rentdesk/client"
)

func newMaintenanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maintenance",
		Short: "Manage maintenance requests",
	}
	cmd.AddCommand(maintenanceListCmd())
	cmd.AddCommand(maintenanceGetCmd())
	cmd.AddCommand(maintenanceCreateCmd())
	cmd.AddCommand(maintenanceUpdateCmd())
	cmd.AddCommand(maintenanceDeleteCmd())
	return cmd
}

func maintenanceListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List maintenance requests",
		Run: func(cmd *cobra.Command, args []string) {
			requests, err := apiClient.Maintenance.List(context.Background())
			if err != nil {
				fatal("list maintenance requests", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "PROPERTY", "TITLE", "PRIORITY", "STATUS"}
				var rows [][]string
				for _, r := range requests {
					rows = append(rows, []string{r.ID, r.PropertyID, r.Title, r.Priority, r.Status})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, r := range requests {
					fmt.Println(r.ID)
				}
				return
			}
			output(requests, "")
		},
	}
}

func maintenanceGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a maintenance request by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			request, err := apiClient.Maintenance.Get(context.Background(), args[0])
			if err != nil {
				fatal("get maintenance request", err)
			}
			output(request, request.ID)
		},
	}
}

func maintenanceCreateCmd() *cobra.Command {
	var req client.CreateMaintenanceRequest
	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a maintenance request",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req.Title = args[0]
			request, err := apiClient.Maintenance.Create(context.Background(), &req)
			if err != nil {
				fatal("create maintenance request", err)
			}
			output(request, request.ID)
		},
	}
	cmd.Flags().StringVar(&req.PropertyID, "property", "", "Property ID")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	cmd.Flags().StringVar(&req.Category, "category", "", "Category")
	cmd.Flags().StringVar(&req.Priority, "priority", "", "Priority (LOW|MEDIUM|HIGH)")
	cmd.Flags().StringVar(&req.Status, "status", "", "Status (OPEN|IN_PROGRESS|SCHEDULED|COMPLETED|CANCELLED)")
	cmd.Flags().StringVar(&req.RequestedDate, "requested", "", "Requested date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "Notes")
	return cmd
}

func maintenanceUpdateCmd() *cobra.Command {
	var title, priority, status, assignedTo, notes string
	var actualCost float64
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a maintenance request",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.UpdateMaintenanceRequest{}
			if cmd.Flags().Changed("title") {
				req.Title = &title
			}
			if cmd.Flags().Changed("priority") {
				req.Priority = &priority
			}
			if cmd.Flags().Changed("status") {
				req.Status = &status
			}
			if cmd.Flags().Changed("assigned-to") {
				req.AssignedTo = &assignedTo
			}
			if cmd.Flags().Changed("actual-cost") {
				req.ActualCost = &actualCost
			}
			if cmd.Flags().Changed("notes") {
				req.Notes = &notes
			}
			request, err := apiClient.Maintenance.Update(context.Background(), args[0], req)
			if err != nil {
				fatal("update maintenance request", err)
			}
			output(request, request.ID)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Title")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (LOW|MEDIUM|HIGH)")
	cmd.Flags().StringVar(&status, "status", "", "Status (OPEN|IN_PROGRESS|SCHEDULED|COMPLETED|CANCELLED)")
	cmd.Flags().StringVar(&assignedTo, "assigned-to", "", "Assignee")
	cmd.Flags().Float64Var(&actualCost, "actual-cost", 0, "Actual cost")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	return cmd
}

func maintenanceDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a maintenance request",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Maintenance.Delete(context.Background(), args[0]); err != nil {
				fatal("delete maintenance request", err)
			}
			fmt.Println("deleted")
		},
	}
}
