// Package netrc reads netrc-format credential files. It recognizes the
// machine, default, login, password, account and macdef keywords, keeps
// every record per machine, and refuses files with unsafe permissions or
// ownership on platforms that have meaningful permission bits.
package netrc

import (
	"os"

	"github.com/pkg/errors"

	"github.com/LabKey/labkey-api-go/internal/common/apperrors"
)

// ErrUnsafePermissions indicates the netrc file is group- or
// world-accessible, or not owned by the current user. The resolver treats
// this as "no credentials available", not as a fatal failure.
var ErrUnsafePermissions = apperrors.New("netrc file has unsafe permissions")

// Entry is one credential record from a netrc file.
type Entry struct {
	Machine  string
	Login    string
	Password string
	Account  string
}

// File holds the parsed contents of a netrc file. Machines map to ordered
// record lists; a bare "default" block is stored under the empty machine
// name.
type File struct {
	machines map[string][]Entry
	order    []string // distinct named machines, in file order
}

// Parse parses netrc-format data. Unknown keywords are skipped and macro
// definitions are consumed without being interpreted, matching the
// permissive behavior of the classic format.
func Parse(data string) *File {
	f := &File{machines: make(map[string][]Entry)}
	lex := newLexer(data)

	var current *Entry
	commit := func() {
		if current == nil {
			return
		}
		name := current.Machine
		if _, seen := f.machines[name]; !seen && name != "" {
			f.order = append(f.order, name)
		}
		f.machines[name] = append(f.machines[name], *current)
		current = nil
	}

	for {
		tok, ok := lex.next()
		if !ok {
			break
		}
		switch tok {
		case "machine":
			name, ok := lex.next()
			if !ok {
				break
			}
			commit()
			current = &Entry{Machine: name}
		case "default":
			commit()
			current = &Entry{}
		case "login":
			if v, ok := lex.next(); ok && current != nil {
				current.Login = v
			}
		case "password":
			if v, ok := lex.next(); ok && current != nil {
				current.Password = v
			}
		case "account":
			if v, ok := lex.next(); ok && current != nil {
				current.Account = v
			}
		case "macdef":
			lex.skipMacro()
		default:
			// stray token, ignore
		}
	}
	commit()
	return f
}

// ParseFile reads and parses the netrc file at path after verifying its
// permissions and ownership.
func ParseFile(path string) (*File, error) {
	if err := checkPermissions(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read netrc file")
	}
	return Parse(string(data)), nil
}

// Lookup returns the first record for host. When no record matches it
// falls back to a default block, then to the file's only machine when
// exactly one is present. The second return is false when nothing usable
// was found.
func (f *File) Lookup(host string) (Entry, bool) {
	if recs := f.machines[host]; len(recs) > 0 {
		return recs[0], true
	}
	if recs := f.machines[""]; len(recs) > 0 {
		return recs[0], true
	}
	if len(f.order) == 1 {
		return f.machines[f.order[0]][0], true
	}
	return Entry{}, false
}

// Machines returns the named machines in file order.
func (f *File) Machines() []string {
	return f.order
}
