// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package source

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// ReadFiles reads a given set of source files, or produces an error.
func ReadFiles(filenames ...string) ([]File, error) {
	files := make([]File, len(filenames))
	//
	for i, n := range filenames {
		bytes, err := os.ReadFile(n)
		if err != nil {
			return nil, err
		}
		//
		files[i] = *NewSourceFile(n, bytes)
	}
	//
	return files, nil
}

// Line provides information about a given line within the original text.
// This includes the line number (counting from 1), and the span of the line
// within the original text.
type Line struct {
	// Original text
	text []rune
	// Span within original text of this line (excluding its terminator).
	span Span
	// Line number of this line (counting from 1).
	number int
}

// Get the string representing this line.
func (p *Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number gets the line number of this line, where the first line in a string
// has line number 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the starting index of this line in the original text.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// File represents a given source text which is the concatenation of an ordered
// sequence of lines.  The length of each line is retained so that offsets into
// the concatenated text can be translated back into line / column positions.
type File struct {
	// File name for this source file.
	filename string
	// Contents of this file.
	contents []rune
	// Length (in characters) of each line, including its terminator.  These
	// always sum to the length of contents.
	lines []int
}

// NewSourceFile constructs a new source file from a given byte array.  The
// bytes are split into lines after each newline character, with line
// terminators preserved.
func NewSourceFile(filename string, bytes []byte) *File {
	var lines []string
	//
	for _, line := range strings.SplitAfter(string(bytes), "\n") {
		// Trailing newline produces an empty final piece
		if line != "" {
			lines = append(lines, line)
		}
	}
	//
	return NewSourceText(filename, lines)
}

// NewSourceText constructs a new source file from an ordered sequence of lines.
// Line terminators (if any) are expected to be included in each line, and are
// used only for mapping offsets to line / column positions.
func NewSourceText(filename string, lines []string) *File {
	var (
		builder strings.Builder
		lengths = make([]int, len(lines))
	)
	//
	for i, line := range lines {
		builder.WriteString(line)
		lengths[i] = utf8.RuneCountInString(line)
	}
	// Convert into runes for easier parsing
	return &File{filename, []rune(builder.String()), lengths}
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// Len returns the number of characters in this source file.
func (s *File) Len() int {
	return len(s.contents)
}

// NumLines returns the number of lines making up this source file.
func (s *File) NumLines() int {
	return len(s.lines)
}

// SyntaxError constructs a syntax error over a given span of this file with a
// given message.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// Position translates an offset into this file into a line number and column,
// both counting from 1.  Offsets at or beyond the end of the file are
// attributed to the last line.
func (s *File) Position(offset int) (int, int) {
	var start int
	//
	for i, n := range s.lines {
		if offset < start+n || i+1 == len(s.lines) {
			return i + 1, offset - start + 1
		}
		//
		start += n
	}
	// Empty file
	return 1, offset + 1
}

// FindFirstEnclosingLine determines the first line  in this source file which
// encloses the start of a span.  Observe that, if the position is beyond the
// bounds of the source file then the last physical line is returned.  Also,
// the returned line is not guaranteed to enclose the entire span, as these can
// cross multiple lines.
func (s *File) FindFirstEnclosingLine(span Span) Line {
	var (
		num, column = s.Position(span.start)
		start       = span.start - column + 1
		end         = start
	)
	//
	if num <= len(s.lines) {
		end = start + s.lines[num-1]
	}
	// Strip line terminator
	for end > start && (s.contents[end-1] == '\n' || s.contents[end-1] == '\r') {
		end--
	}
	//
	return Line{s.contents, Span{start, end}, num}
}

// SyntaxError is a structured error which retains the index into the original
// text where an error occurred, along with an error message.
type SyntaxError struct {
	srcfile *File
	// Character index into text being parsed where error arose.
	span Span
	// Error message being reported
	msg string
}

// SourceFile returns the underlying source file that this syntax error covers.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Position returns the line number and column (both counting from 1) at which
// this error starts.  This is only resolved on demand.
func (p *SyntaxError) Position() (int, int) {
	return p.srcfile.Position(p.span.start)
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	line, column := p.Position()
	return fmt.Sprintf("%s at line %d pos %d", p.msg, line, column)
}

// FirstEnclosingLine determines the first line in this source file to which
// this error is associated. Observe that, if the position is beyond the bounds
// of the source file then the last physical line is returned.  Also, the
// returned line is not guaranteed to enclose the entire span, as these can
// cross multiple lines.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}
