package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gymbuddy/gymbuddy/pkg/contract"
)

// contractCmd represents the contract command
var contractCmd = &cobra.Command{
	Use:   "contract",
	Short: "Print or check the coach API contract",
	Long:  `Prints the bundled OpenAPI document describing the coach API. With --check it validates the document instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		check, _ := cmd.Flags().GetBool("check")

		if !check {
			fmt.Print(string(contract.Raw()))
			return
		}

		if _, err := contract.Load(context.Background()); err != nil {
			fmt.Printf("Contract invalid: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Contract OK")
	},
}

func init() {
	rootCmd.AddCommand(contractCmd)

	contractCmd.Flags().Bool("check", false, "Validate the bundled contract instead of printing it")
}
