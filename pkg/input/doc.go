// Package input implements validated console input.
//
// A Prompter prints a prompt, reads one line and hands it to a caller
// supplied check. Lines that fail the check are answered with a fixed error
// message and the prompt is repeated, with no limit on the number of
// attempts. The only ways out of the loop are a valid line, a cancelled
// context, or the end of the input stream (ErrInputClosed).
//
// Usage:
//
//	p := input.NewPrompter(input.NewLineReader(ctx, os.Stdin), os.Stdout)
//	title, err := p.Validated(ctx, "Enter title:", input.NonEmpty, "Title must not be empty.")
//	date, err := input.Parsed(ctx, p, "Enter release date (YYYY-MM-DD):",
//		input.DateParser(core.ISODate), "Invalid date format. Please use YYYY-MM-DD.")
package input
