package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gowallet-cli",
		Short: "GoWallet CLI tool",
		Long:  `A command line interface for interacting with the GoWallet API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GoWallet API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(
		recordCmd(),
		transactionsCmd(),
		balanceCmd(),
		historyCmd(),
		reconcileCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func recordCmd() *cobra.Command {
	var (
		transactionID string
		direction     string
		description   string
		amount        string
	)

	cmd := &cobra.Command{
		Use:   "record <customer-id>",
		Short: "Record a wallet transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{
				"customer_id": args[0],
				"direction":   strings.ToUpper(direction),
				"description": description,
				"amount":      amount,
			}
			if transactionID != "" {
				payload["transaction_id"] = transactionID
			}
			return postJSON("/api/v1/transactions", payload)
		},
	}

	cmd.Flags().StringVar(&transactionID, "transaction-id", "", "Transaction ID (generated when omitted)")
	cmd.Flags().StringVar(&direction, "direction", "", "CREDIT or DEBIT")
	cmd.Flags().StringVar(&description, "description", "", "Transaction description")
	cmd.Flags().StringVar(&amount, "amount", "", "Transaction amount")
	_ = cmd.MarkFlagRequired("direction")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func transactionsCmd() *cobra.Command {
	var total int

	cmd := &cobra.Command{
		Use:   "transactions <customer-id>",
		Short: "List recent transactions for a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON(fmt.Sprintf("/api/v1/customers/%s/transactions?total=%d", url.PathEscape(args[0]), total))
		},
	}

	cmd.Flags().IntVar(&total, "total", 10, "Number of transactions to return")

	return cmd
}

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <customer-id>",
		Short: "Show the current balance for a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON(fmt.Sprintf("/api/v1/customers/%s/balance", url.PathEscape(args[0])))
		},
	}
}

func historyCmd() *cobra.Command {
	var total int

	cmd := &cobra.Command{
		Use:   "history <customer-id>",
		Short: "List recent balance history for a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON(fmt.Sprintf("/api/v1/customers/%s/balance/history?total=%d", url.PathEscape(args[0]), total))
		},
	}

	cmd.Flags().IntVar(&total, "total", 10, "Number of history entries to return")

	return cmd
}

func reconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile <customer-id>",
		Short: "Check a customer balance against the transaction ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON(fmt.Sprintf("/api/v1/customers/%s/reconciliation", url.PathEscape(args[0])))
		},
	}
}

func getJSON(path string) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func postJSON(path string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", strings.NewReader(string(data)))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		fmt.Println(string(body))
	} else {
		printJSON(parsed)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return nil
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
