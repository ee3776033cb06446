package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the aggregate dashboard",
		Run: func(cmd *cobra.Command, args []string) {
			dashboard, err := apiClient.Dashboard(context.Background())
			if err != nil {
				fatal("get dashboard", err)
			}
			if flagFmt == "table" {
				m := dashboard.Metrics
				headers := []string{"METRIC", "VALUE"}
				rows := [][]string{
					{"Total properties", strconv.Itoa(m.TotalProperties)},
					{"Occupied properties", strconv.Itoa(m.OccupiedProperties)},
					{"Total tenants", strconv.Itoa(m.TotalTenants)},
					{"Active leases", strconv.Itoa(m.ActiveLeases)},
					{"Pending payments", strconv.Itoa(m.PendingPayments)},
					{"Open maintenance", strconv.Itoa(m.OpenMaintenanceRequests)},
					{"Occupancy rate", strconv.Itoa(m.OccupancyRate) + "%"},
					{"Monthly income", money(m.TotalMonthlyIncome)},
				}
				formatTable(headers, rows)
				return
			}
			output(dashboard, "")
		},
	}
}

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Reconcile property statuses against active leases",
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := apiClient.SyncProperties(context.Background())
			if err != nil {
				fatal("sync properties", err)
			}
			if flagFmt == "quiet" {
				fmt.Println(resp.Changed)
				return
			}
			output(resp, "")
		},
	}
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := apiClient.Health(context.Background())
			if err != nil {
				fatal("health check", err)
			}
			output(resp, resp.Status)
		},
	}
}

func newLoginCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Log in and print a session token",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := apiClient.Auth.Login(context.Background(), args[0], password)
			if err != nil {
				fatal("login", err)
			}
			if flagFmt == "quiet" {
				fmt.Println(resp.Token)
				return
			}
			output(resp, resp.Token)
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "Password")
	return cmd
}
