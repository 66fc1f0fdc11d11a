// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"fmt"
	"regexp"

	"github.com/benchviz/benchplot/benchfmt"
)

// Select returns the indexes of the records of rs whose name matches
// the regular expression pattern, in order.
func Select(rs *benchfmt.ResultSet, pattern string) ([]int, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad benchmark filter: %w", err)
	}
	var idxs []int
	for i, rec := range rs.Records {
		if re.MatchString(rec.Name) {
			idxs = append(idxs, i)
		}
	}
	return idxs, nil
}
