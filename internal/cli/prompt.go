package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/howeyc/gopass"
)

// prompt reads one line of input from the terminal. With echo off the
// input is read through gopass so the password never appears on screen.
func prompt(label string, echo bool) (string, error) {
	fmt.Print(label + ": ")
	if echo {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Scan()
		return scanner.Text(), scanner.Err()
	}
	passBytes, err := gopass.GetPasswd()
	return string(passBytes), err
}
