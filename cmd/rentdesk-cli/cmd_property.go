package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rentdesk/rentdesk/client"
)

func newPropertyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "property",
		Short: "Manage properties",
	}
	cmd.AddCommand(propertyListCmd())
	cmd.AddCommand(propertyGetCmd())
	cmd.AddCommand(propertyCreateCmd())
	cmd.AddCommand(propertyUpdateCmd())
	cmd.AddCommand(propertyDeleteCmd())
	return cmd
}

func propertyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List properties",
		Run: func(cmd *cobra.Command, args []string) {
			properties, err := apiClient.Properties.List(context.Background())
			if err != nil {
				fatal("list properties", err)
			}
			if flagFmt == "table" {
				headers := []string{"ID", "NAME", "ADDRESS", "TYPE", "STATUS", "RENT"}
				var rows [][]string
				for _, p := range properties {
					rows = append(rows, []string{p.ID, p.Name, p.Address, p.Type, p.Status, money(p.RentAmount)})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, p := range properties {
					fmt.Println(p.ID)
				}
				return
			}
			output(properties, "")
		},
	}
}

func propertyGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a property by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			property, err := apiClient.Properties.Get(context.Background(), args[0])
			if err != nil {
				fatal("get property", err)
			}
			output(property, property.ID)
		},
	}
}

func propertyCreateCmd() *cobra.Command {
	var req client.CreatePropertyRequest
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a property",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req.Name = args[0]
			property, err := apiClient.Properties.Create(context.Background(), &req)
			if err != nil {
				fatal("create property", err)
			}
			output(property, property.ID)
		},
	}
	cmd.Flags().StringVar(&req.Address, "address", "", "Street address")
	cmd.Flags().StringVar(&req.City, "city", "", "City")
	cmd.Flags().StringVar(&req.State, "state", "", "State")
	cmd.Flags().StringVar(&req.ZipCode, "zip", "", "Zip code")
	cmd.Flags().StringVar(&req.Type, "type", "", "Property type (APARTMENT|HOUSE|CONDO|STUDIO|TOWNHOUSE|OTHER)")
	cmd.Flags().IntVar(&req.Bedrooms, "bedrooms", 0, "Bedroom count")
	cmd.Flags().Float64Var(&req.Bathrooms, "bathrooms", 0, "Bathroom count")
	cmd.Flags().IntVar(&req.SquareFeet, "sqft", 0, "Square feet")
	cmd.Flags().Float64Var(&req.RentAmount, "rent", 0, "Monthly rent amount")
	cmd.Flags().StringVar(&req.Status, "status", "", "Status (AVAILABLE|OCCUPIED|MAINTENANCE|UNAVAILABLE)")
	return cmd
}

func propertyUpdateCmd() *cobra.Command {
	var name, address, status string
	var rent float64
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a property",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.UpdatePropertyRequest{}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("address") {
				req.Address = &address
			}
			if cmd.Flags().Changed("status") {
				req.Status = &status
			}
			if cmd.Flags().Changed("rent") {
				req.RentAmount = &rent
			}
			property, err := apiClient.Properties.Update(context.Background(), args[0], req)
			if err != nil {
				fatal("update property", err)
			}
			output(property, property.ID)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Property name")
	cmd.Flags().StringVar(&address, "address", "", "Street address")
	cmd.Flags().StringVar(&status, "status", "", "Status (AVAILABLE|OCCUPIED|MAINTENANCE|UNAVAILABLE)")
	cmd.Flags().Float64Var(&rent, "rent", 0, "Monthly rent amount")
	return cmd
}

func propertyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a property",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Properties.Delete(context.Background(), args[0]); err != nil {
				fatal("delete property", err)
			}
			fmt.Println("deleted")
		},
	}
}
