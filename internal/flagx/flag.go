// Package flagx lets several independent flag sets share os.Args.
//
// The config layer parses the JSON file location and the override flags in
// separate passes; each pass keeps only the arguments it knows about so
// neither trips over the other's flags.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns the subset of args that belong to the listed flags.
//
// Flags in valueFlags take a value, either joined ("-u=users.csv") or as the
// following argument ("-u users.csv"). A following argument that starts
// with "-" is never taken as a value, except a lone "-" (stdin/stderr). Flags in boolFlags never consume the
// following argument. The result is never nil.
func FilterArgs(args []string, valueFlags []string, boolFlags []string) []string {
	takesValue := make(map[string]bool, len(valueFlags)+len(boolFlags))
	for _, f := range valueFlags {
		takesValue[f] = true
	}
	for _, f := range boolFlags {
		takesValue[f] = false
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := takesValue[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		needsValue, ok := takesValue[arg]
		if !ok {
			continue
		}
		filtered = append(filtered, arg)
		if needsValue && i+1 < len(args) && isValue(args[i+1]) {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

func isValue(arg string) bool {
	return arg == "-" || !strings.HasPrefix(arg, "-")
}

// ConfigFileFlag returns the JSON config path given with -c or -config,
// or "" when neither is present.
func ConfigFileFlag() string {
	var path string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config", "--config"}, nil)

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(args)

	return path
}
