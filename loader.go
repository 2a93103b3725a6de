// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/schollz/progressbar/v3"
)

// maxSequenceLength caps how many values one n..m token may expand to
const maxSequenceLength = 65536

// ParseValue parses a single key. Anything that is not an integer is
// rejected with a message naming the offending token.
func ParseValue(token string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", token)
	}
	return value, nil
}

// ParseSequence expands an inclusive "n..m" range. A descending range
// like 7..1 yields the values in descending order.
func ParseSequence(spec string) ([]int, error) {
	fromStr, toStr, found := strings.Cut(spec, "..")
	if !found {
		return nil, fmt.Errorf("%q is not a sequence; use n..m", spec)
	}

	from, err := ParseValue(fromStr)
	if err != nil {
		return nil, fmt.Errorf("bad sequence start in %q: %v", spec, err)
	}
	to, err := ParseValue(toStr)
	if err != nil {
		return nil, fmt.Errorf("bad sequence end in %q: %v", spec, err)
	}

	step := 1
	count := to - from + 1
	if to < from {
		step = -1
		count = from - to + 1
	}
	if count > maxSequenceLength {
		return nil, fmt.Errorf("sequence %q expands to %d values (limit %d)", spec, count, maxSequenceLength)
	}

	values := make([]int, 0, count)
	for v := from; v != to+step; v += step {
		values = append(values, v)
	}
	return values, nil
}

// parseToken turns one token into values. A token is either a single
// integer or an n..m sequence.
func parseToken(token string) ([]int, error) {
	if strings.Contains(token, "..") {
		return ParseSequence(token)
	}
	value, err := ParseValue(token)
	if err != nil {
		return nil, err
	}
	return []int{value}, nil
}

func splitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// ParseArgs expands command line arguments into keys. Arguments may mix
// plain integers, comma lists and n..m sequences. Tokens that do not
// parse come back in rejected instead of aborting the whole load.
func ParseArgs(args []string) (values []int, rejected []string) {
	for _, arg := range args {
		for _, token := range splitTokens(arg) {
			parsed, err := parseToken(token)
			if err != nil {
				rejected = append(rejected, token)
				continue
			}
			values = append(values, parsed...)
		}
	}
	return values, rejected
}

// ReadValuesFile reads keys from a text file. Values split on
// whitespace and commas, lines starting with # are comments.
func ReadValuesFile(path string) (values []int, rejected []string, err error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("values file not found. Create %s with one integer per line, then try again", path)
		}
		return nil, nil, err
	}
	defer file.Close()

	// Pre-allocate with an estimate of one short value per few bytes
	if stat, err := file.Stat(); err == nil {
		estimatedValues := int(stat.Size() / 4)
		values = make([]int, 0, estimatedValues)
	}

	scanner := bufio.NewScanner(file)
	// Increase buffer size so long generated lines do not stop the scan
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		for _, token := range splitTokens(line) {
			parsed, err := parseToken(token)
			if err != nil {
				rejected = append(rejected, token)
				continue
			}
			values = append(values, parsed...)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	return values, rejected, nil
}

// LoadValues inserts the values in order, recording each outcome in the
// session. Values the tree already holds count as duplicates and leave
// it untouched.
func LoadValues(tree *AVLTree, session *Session, values []int, showProgress bool) (inserted, duplicates int) {
	known := make(map[int]bool, tree.Size()+len(values))
	for _, key := range tree.InOrderKeys() {
		known[key] = true
	}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(values),
			progressbar.OptionSetDescription("🌱 Growing tree..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Printf("\n✅ Tree grown!\n")
			}),
		)
	}

	for _, value := range values {
		outcome := OutcomeInserted
		if known[value] {
			outcome = OutcomeDuplicate
			duplicates++
		} else {
			tree.Insert(value)
			known[value] = true
			inserted++
		}

		if session != nil {
			session.Observe(value, outcome)
		}
		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil {
		bar.Finish()
	}

	return inserted, duplicates
}
