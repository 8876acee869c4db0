package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// normalizeArgs lets negative epochs and offsets such as "-7d" or "-86400"
// be passed as positional arguments. pflag would otherwise read them as
// shorthand flags, so when one is present the positionals are moved behind
// a "--" terminator, keeping their order and any leading subcommand name.
func normalizeArgs(root *cobra.Command, args []string) []string {
	var flags, positional []string
	hyphenValue := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case isHyphenValue(root, arg):
			hyphenValue = true
			positional = append(positional, arg)
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flags = append(flags, arg)
			if takesValue(root, arg) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			positional = append(positional, arg)
		}
	}

	if !hyphenValue {
		return args
	}

	out := append([]string{}, flags...)
	if len(positional) > 0 && isSubcommand(root, positional[0]) {
		out = append(out, positional[0])
		positional = positional[1:]
	}
	out = append(out, "--")
	return append(out, positional...)
}

// isHyphenValue reports whether arg is a negative number or offset rather
// than a flag: a single-dash argument that is not a known shorthand.
func isHyphenValue(root *cobra.Command, arg string) bool {
	if len(arg) < 2 || arg[0] != '-' || arg[1] == '-' {
		return false
	}
	return !isShorthand(root, arg)
}

// isShorthand reports whether arg is a known single-letter flag. -h and -v
// are registered by cobra only at execution time.
func isShorthand(root *cobra.Command, arg string) bool {
	if len(arg) != 2 {
		return false
	}
	if arg == "-h" || arg == "-v" {
		return true
	}
	for _, c := range append([]*cobra.Command{root}, root.Commands()...) {
		if c.Flags().ShorthandLookup(arg[1:]) != nil || c.PersistentFlags().ShorthandLookup(arg[1:]) != nil {
			return true
		}
	}
	return false
}

// takesValue reports whether the long flag named by arg expects its value in
// the next argument.
func takesValue(root *cobra.Command, arg string) bool {
	if !strings.HasPrefix(arg, "--") || strings.Contains(arg, "=") {
		return false
	}
	name := strings.TrimPrefix(arg, "--")
	for _, c := range append([]*cobra.Command{root}, root.Commands()...) {
		if f := c.PersistentFlags().Lookup(name); f != nil {
			return f.NoOptDefVal == ""
		}
		if f := c.Flags().Lookup(name); f != nil {
			return f.NoOptDefVal == ""
		}
	}
	return false
}

func isSubcommand(root *cobra.Command, name string) bool {
	for _, c := range root.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}
