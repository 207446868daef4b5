package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password
// from the user's terminal without echo. A newline is printed after
// the read to keep the UI tidy.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetMultiline prints a prompt to w and reads lines until an empty one.
// The collected text is joined with '\n'. Used for listing descriptions.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// ask reads one line. When current is non-empty it is shown and kept on an
// empty answer, which is how edit forms prefill values.
func (a *App) ask(prompt, current string) (string, error) {
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, current)
	}
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

// askRequired repeats the prompt until something non-empty is entered.
func (a *App) askRequired(prompt, current string) (string, error) {
	for {
		v, err := a.ask(prompt, current)
		if err != nil {
			return "", err
		}
		if v != "" {
			return v, nil
		}
		a.println("A value is required.")
	}
}

func (a *App) askInt(prompt string, current int64) (int64, error) {
	def := ""
	if current != 0 {
		def = strconv.FormatInt(current, 10)
	}
	for {
		v, err := a.askRequired(prompt, def)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return n, nil
		}
		a.println("Please enter a whole number.")
	}
}

func (a *App) askFloat(prompt string, current float64) (float64, error) {
	def := ""
	if current != 0 {
		def = strconv.FormatFloat(current, 'f', -1, 64)
	}
	for {
		v, err := a.askRequired(prompt, def)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f, nil
		}
		a.println("Please enter a number.")
	}
}

func (a *App) askBool(prompt string, current bool) (bool, error) {
	def := "n"
	if current {
		def = "y"
	}
	for {
		v, err := a.ask(prompt+" (y/n)", def)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(v) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		a.println("Please answer y or n.")
	}
}

// askChoice accepts one of options, case-insensitively, or its 1-based index.
func (a *App) askChoice(prompt string, options []string, current string) (string, error) {
	full := fmt.Sprintf("%s (%s)", prompt, strings.Join(options, ", "))
	for {
		v, err := a.askRequired(full, current)
		if err != nil {
			return "", err
		}
		if i, err := strconv.Atoi(v); err == nil && i >= 1 && i <= len(options) {
			return options[i-1], nil
		}
		if j := slices.IndexFunc(options, func(o string) bool { return strings.EqualFold(o, v) }); j >= 0 {
			return options[j], nil
		}
		a.println("Please pick one of:", strings.Join(options, ", "))
	}
}

func (a *App) confirm(prompt string) (bool, error) {
	v, err := getSimpleText(a.reader, prompt+" (y/N)", a.out)
	if err != nil {
		return false, err
	}
	v = strings.ToLower(v)
	return v == "y" || v == "yes", nil
}
