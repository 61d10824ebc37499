package pdftext

import (
	"encoding/hex"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// textRun is one positioned piece of shown text from a content stream.
type textRun struct {
	x, y float64
	text string
}

// decodeContentRuns interprets the text-positioning and text-showing
// operators of a decoded content stream. It tracks only the translation
// components of the text matrix - enough to recover reading order, which
// is all the cascade needs.
func decodeContentRuns(stream []byte) []textRun {
	var (
		runs    []textRun
		nums    []float64
		strs    []string
		x, y    float64
		leading float64 = 12
	)

	emit := func(s string) {
		if s == "" {
			return
		}
		runs = append(runs, textRun{x: x, y: y, text: s})
	}
	lastStr := func() string {
		if len(strs) == 0 {
			return ""
		}
		return strs[len(strs)-1]
	}
	reset := func() {
		nums = nums[:0]
		strs = strs[:0]
	}

	i := 0
	n := len(stream)
	for i < n {
		c := stream[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0:
			i++
		case c == '%': // comment to end of line
			for i < n && stream[i] != '\n' {
				i++
			}
		case c == '(':
			s, next := readLiteralString(stream, i)
			strs = append(strs, s)
			i = next
		case c == '<':
			if i+1 < n && stream[i+1] == '<' {
				i = skipDictionary(stream, i)
			} else {
				s, next := readHexString(stream, i)
				strs = append(strs, s)
				i = next
			}
		case c == '[' || c == ']':
			i++
		case c == '/':
			i++
			for i < n && !isDelimiter(stream[i]) {
				i++
			}
		case c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9'):
			start := i
			i++
			for i < n && !isDelimiter(stream[i]) {
				i++
			}
			if v, err := strconv.ParseFloat(string(stream[start:i]), 64); err == nil {
				nums = append(nums, v)
			}
		default:
			start := i
			for i < n && !isDelimiter(stream[i]) {
				i++
			}
			op := string(stream[start:i])
			switch op {
			case "BT":
				x, y = 0, 0
			case "Tm":
				if len(nums) >= 6 {
					x, y = nums[len(nums)-2], nums[len(nums)-1]
				}
			case "Td":
				if len(nums) >= 2 {
					x += nums[len(nums)-2]
					y += nums[len(nums)-1]
				}
			case "TD":
				if len(nums) >= 2 {
					x += nums[len(nums)-2]
					y += nums[len(nums)-1]
					leading = -nums[len(nums)-1]
				}
			case "TL":
				if len(nums) >= 1 {
					leading = nums[len(nums)-1]
				}
			case "T*":
				y -= leading
			case "Tj":
				emit(decodeRunText(lastStr()))
			case "'", "\"":
				y -= leading
				emit(decodeRunText(lastStr()))
			case "TJ":
				// array elements were collected in order; numbers are
				// kerning adjustments and are ignored
				emit(decodeRunText(strings.Join(strs, "")))
			}
			reset()
		}
	}
	return runs
}

// joinRuns orders runs top-to-bottom then left-to-right and rebuilds
// line structure. PDF y grows upward, so top of page is the largest y.
func joinRuns(runs []textRun) string {
	if len(runs) == 0 {
		return ""
	}
	sort.SliceStable(runs, func(i, j int) bool {
		if math.Abs(runs[i].y-runs[j].y) > 0.5 {
			return runs[i].y > runs[j].y
		}
		return runs[i].x < runs[j].x
	})

	var sb strings.Builder
	prevY := runs[0].y
	for i, r := range runs {
		if i > 0 {
			if math.Abs(r.y-prevY) > 0.5 {
				sb.WriteByte('\n')
			} else if !strings.HasSuffix(sb.String(), " ") {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(r.text)
		prevY = r.y
	}
	return sb.String()
}

// decodeRunText percent-decodes run text defensively, keeping the raw
// text when decoding fails.
func decodeRunText(s string) string {
	if strings.Contains(s, "%") {
		if dec, err := url.PathUnescape(s); err == nil {
			return dec
		}
	}
	return s
}

func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\f', 0, '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// readLiteralString reads a (...) string starting at stream[i] == '('.
// Handles nesting, escapes, and octal codes per the PDF spec.
func readLiteralString(stream []byte, i int) (string, int) {
	var sb strings.Builder
	depth := 0
	n := len(stream)
	for ; i < n; i++ {
		c := stream[i]
		switch c {
		case '(':
			depth++
			if depth > 1 {
				sb.WriteByte(c)
			}
		case ')':
			depth--
			if depth == 0 {
				return sb.String(), i + 1
			}
			sb.WriteByte(c)
		case '\\':
			if i+1 >= n {
				break
			}
			i++
			switch stream[i] {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case 'b', 'f':
				// ignore
			case '\n':
				// line continuation
			case '(', ')', '\\':
				sb.WriteByte(stream[i])
			default:
				if stream[i] >= '0' && stream[i] <= '7' {
					code := 0
					for k := 0; k < 3 && i < n && stream[i] >= '0' && stream[i] <= '7'; k++ {
						code = code*8 + int(stream[i]-'0')
						i++
					}
					i--
					if code >= 32 && code < 127 {
						sb.WriteByte(byte(code))
					}
				} else {
					sb.WriteByte(stream[i])
				}
			}
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), i
}

// readHexString reads a <...> hex string starting at stream[i] == '<'.
func readHexString(stream []byte, i int) (string, int) {
	i++
	start := i
	n := len(stream)
	for i < n && stream[i] != '>' {
		i++
	}
	raw := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\r' || r == '\t' {
			return -1
		}
		return r
	}, string(stream[start:i]))
	if len(raw)%2 == 1 {
		raw += "0"
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return "", i + 1
	}
	var sb strings.Builder
	for _, c := range b {
		if c >= 32 && c < 127 {
			sb.WriteByte(c)
		}
	}
	return sb.String(), i + 1
}

// skipDictionary skips a << ... >> span starting at stream[i] == '<'.
func skipDictionary(stream []byte, i int) int {
	depth := 0
	n := len(stream)
	for i < n-1 {
		if stream[i] == '<' && stream[i+1] == '<' {
			depth++
			i += 2
			continue
		}
		if stream[i] == '>' && stream[i+1] == '>' {
			depth--
			i += 2
			if depth == 0 {
				return i
			}
			continue
		}
		i++
	}
	return n
}
