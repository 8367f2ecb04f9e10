package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/neo/pwmeter/internal/analyzer"
	"github.com/neo/pwmeter/internal/logging"
	"github.com/neo/pwmeter/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	analyzeJSON      bool
	analyzeStdin     bool
	analyzeMaxLength int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [password]",
	Short: "Analyze the strength of a password",
	Long: `Analyze a password and print its score, tier, crack time and weaknesses.

The password is taken from the argument, from stdin (--stdin, one password per
line), or from a hidden terminal prompt when neither is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		switch {
		case len(args) == 1:
			return analyzeOne(out, args[0])
		case analyzeStdin:
			return analyzeLines(out, cmd.InOrStdin())
		default:
			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}
			return analyzeOne(out, password)
		}
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the result as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeStdin, "stdin", false, "read passwords from stdin, one per line")
	analyzeCmd.Flags().IntVar(&analyzeMaxLength, "max-length", analyzer.DefaultMaxLength, "reject passwords longer than this many characters (0 disables)")
}

func analyzeOne(out io.Writer, password string) error {
	if err := analyzer.Guard(password, analyzeMaxLength); err != nil {
		return err
	}

	start := time.Now()
	result := analyzer.Analyze(password)
	if !result.Idle() {
		logging.LogAnalysisEvent("cli", "", types.CodeUnits(password), result.Score, result.Tier.String(), time.Since(start))
	}

	if analyzeJSON {
		return json.NewEncoder(out).Encode(result)
	}
	printResult(out, result)
	return nil
}

// analyzeLines analyses every line of r. Over-long lines are reported and skipped.
func analyzeLines(out io.Writer, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		password := strings.TrimRight(scanner.Text(), "\r")
		if err := analyzeOne(out, password); err != nil {
			if errors.Is(err, analyzer.ErrTooLong) {
				logging.Warn("Skipping input", map[string]interface{}{"line": line, "error": err.Error()})
				continue
			}
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	return nil
}

func printResult(out io.Writer, result analyzer.Result) {
	if result.Idle() {
		fmt.Fprintln(out, "Enter a password")
		return
	}

	fmt.Fprintf(out, "Strength:   %s (%.1f/100)\n", result.Tier.Label(), result.Score)
	fmt.Fprintf(out, "Length:     %s\n", result.Report.Length)
	fmt.Fprintf(out, "Variety:    %s\n", result.Report.Variety)
	fmt.Fprintf(out, "Entropy:    %.1f bits\n", result.Entropy)
	fmt.Fprintf(out, "Crack time: %s\n", result.Report.CrackTime)
	if len(result.Findings) == 0 {
		fmt.Fprintf(out, "Patterns:   %s\n", result.Report.Patterns)
		return
	}
	fmt.Fprintln(out, "Patterns:")
	for _, f := range result.Findings {
		fmt.Fprintf(out, "  - %s\n", f)
	}
}

// promptPassword reads a password without echo
func promptPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("interactive password prompting requires a terminal; pass the password as an argument or use --stdin")
	}

	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}
