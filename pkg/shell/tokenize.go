package shell

import "strings"

var unquote = strings.NewReplacer(`"`, "", `'`, "")

// Tokenize splits line on whitespace and strips quote characters from each
// token. Quotes never group words, so `cat "a b"` yields [cat a b]. A token
// that was nothing but quotes becomes an empty argument, so `login root ""`
// passes an empty password.
func Tokenize(line string) []string {
	fields := strings.Fields(line)
	for i, f := range fields {
		fields[i] = unquote.Replace(f)
	}
	return fields
}
