package main

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/safeback/pkg/safeback"
)

func newShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run the interactive command loop",
		Long: `Repeatedly prompt for a file name and a command (backup, restore,
delete). "exit" or "quit" at the file name prompt ends the loop.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			return runShell(svc, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// runShell drives the interactive loop. Errors from individual
// operations are printed and the loop continues; only the exit sentinels
// or end of input terminate it.
func runShell(svc *safeback.Service, in io.Reader, out, errw io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Please enter your file name: ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		filename := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(filename, "exit") || strings.EqualFold(filename, "quit") {
			fmt.Fprintln(out, "Bye.")
			return nil
		}

		if _, err := svc.Validate(filename); err != nil {
			fmt.Fprintf(errw, "[error] %v\n", err)
			continue
		}

		fmt.Fprint(out, "Please enter your command (backup, restore, delete): ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		command := strings.ToLower(strings.TrimSpace(scanner.Text()))

		switch command {
		case "backup":
			if path, err := svc.Backup(filename); err != nil {
				fmt.Fprintf(errw, "[error] %v\n", err)
			} else {
				fmt.Fprintf(out, "Your backup created: %s\n", filepath.Base(path))
			}
		case "restore":
			if dest, err := svc.Restore(filename); err != nil {
				fmt.Fprintf(errw, "[error] %v\n", err)
			} else {
				fmt.Fprintf(out, "Your file has been restored: %s\n", filepath.Base(dest))
			}
		case "delete":
			if err := svc.Delete(filename); err != nil {
				fmt.Fprintf(errw, "[error] %v\n", err)
			} else {
				fmt.Fprintf(out, "Deleted: %s\n", filename)
			}
		default:
			fmt.Fprintf(errw, "[error] unknown command: %s\n", command)
		}
		fmt.Fprintln(out)
	}
}
