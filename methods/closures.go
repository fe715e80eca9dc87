package methods

import (
	"fmt"
	"io"
)

// Printer writes one message line.
type Printer func(w io.Writer)

// RememberMessage returns a block that prints message, captured now.
func RememberMessage(message string) Printer {
	return func(w io.Writer) {
		fmt.Fprintf(w, "This message remembers message :: %s\n", message)
	}
}

// BlockMessagePrinter runs block when one is given, then prints its own
// local message, which never leaks into the block.
func BlockMessagePrinter(w io.Writer, block Printer) {
	message := "Welcome to Block Message Printer"
	if block != nil {
		block(w)
	}
	fmt.Fprintf(w, "But in this function/method message is :: %s\n", message)
}

// ProcMessagePrinter calls myProc then prints its own local message.
func ProcMessagePrinter(w io.Writer, myProc Printer) {
	message := "Welcome to Proc Message Printer"
	myProc(w)
	fmt.Fprintf(w, "But in this function/method message is :: %s\n", message)
}

// LambdaMessagePrinter calls myLambda then prints its own local message.
func LambdaMessagePrinter(w io.Writer, myLambda Printer) {
	message := "Welcome to Lambda Message Printer"
	myLambda(w)
	fmt.Fprintf(w, "But in this function/method message is :: %s\n", message)
}
