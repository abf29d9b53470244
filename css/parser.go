package css

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// FragmentSelector is the synthetic selector bare declaration fragments are
// wrapped into by ParseFragment.
const FragmentSelector = ":root"

// Parser reads generated CSS back into a Stylesheet so it can be checked.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{
		Items:    make([]StylesheetItem, 0),
		Warnings: make([]string, 0),
	}

	// Log parsing start with source identifier if provided
	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	var pending []string
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			p.checkErr(parser, sheet)
			return sheet

		case css.BeginAtRuleGrammar:
			atRule := strings.ToLower(string(data))
			if atRule == "@media" {
				mq := parseMediaQueryFromTokens(parser.Values())
				rules := p.parseMediaBlockRules(parser, sheet)
				p.log.Debug("Parsed @media block", zap.String("query", mq.Raw), zap.Int("rules", len(rules)))
				sheet.Items = append(sheet.Items, StylesheetItem{
					MediaBlock: &MediaBlock{Query: mq, Rules: rules},
				})
				continue
			}
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+atRule)
			p.skipAtRuleBlock(parser)
			p.log.Debug("Skipping @-rule", zap.String("rule", atRule))

		case css.AtRuleGrammar:
			// Simple @-rule without block (e.g., @import, @charset)
			atRule := string(data)
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+atRule)
			p.log.Debug("Skipping @-rule", zap.String("rule", atRule))

		case css.QualifiedRuleGrammar:
			// Grouped selector, the rest comes with BeginRulesetGrammar
			pending = append(pending, parseSelector(data, parser.Values()))

		case css.BeginRulesetGrammar:
			rule := p.parseRuleset(parser, groupSelectors(&pending, parseSelector(data, parser.Values())), sheet)
			sheet.Items = append(sheet.Items, StylesheetItem{Rule: &rule})

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			sheet.Warnings = append(sheet.Warnings, "declaration outside of a rule: "+string(data))
		}
	}
}

// ParseFragment parses a bare declaration fragment by wrapping it into a
// FragmentSelector rule.
func (p *Parser) ParseFragment(fragment []byte) *Stylesheet {
	var buf bytes.Buffer
	buf.Grow(len(fragment) + len(FragmentSelector) + 5)
	buf.WriteString(FragmentSelector)
	buf.WriteString(" {\n")
	buf.Write(fragment)
	buf.WriteString("\n}\n")
	return p.Parse(buf.Bytes(), "fragment")
}

// checkErr records tokenizer errors other than end of input.
func (p *Parser) checkErr(parser *css.Parser, sheet *Stylesheet) {
	if err := parser.Err(); err != nil && err != io.EOF {
		sheet.Warnings = append(sheet.Warnings, "parse error: "+err.Error())
		p.log.Debug("CSS parse error", zap.Error(err))
	}
}

// parseSelector builds selector string from token data, whitespace collapsed.
func parseSelector(data []byte, values []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	return strings.Trim(strings.Join(strings.Fields(sb.String()), " "), ", ")
}

// groupSelectors joins pending grouped selectors with the last one and resets
// pending.
func groupSelectors(pending *[]string, last string) string {
	if len(*pending) == 0 {
		return last
	}
	sel := strings.Join(append(*pending, last), ", ")
	*pending = nil
	return sel
}

// parseRuleset collects declarations and nested rules until the end of the
// ruleset.
func (p *Parser) parseRuleset(parser *css.Parser, selector string, sheet *Stylesheet) Rule {
	rule := Rule{Selector: selector}

	var pending []string
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return rule

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			propName := string(data)
			if gt == css.DeclarationGrammar {
				propName = strings.ToLower(propName)
			}
			rule.Declarations = append(rule.Declarations, Declaration{
				Property: propName,
				Value:    parsePropertyValue(parser.Values()),
			})

		case css.QualifiedRuleGrammar:
			pending = append(pending, parseSelector(data, parser.Values()))

		case css.BeginRulesetGrammar:
			nested := p.parseRuleset(parser, groupSelectors(&pending, parseSelector(data, parser.Values())), sheet)
			rule.Nested = append(rule.Nested, nested)

		case css.BeginAtRuleGrammar:
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule inside "+selector+": "+string(data))
			p.skipAtRuleBlock(parser)
		}
	}
}

// parsePropertyValue converts CSS tokens to a Value.
func parsePropertyValue(tokens []css.Token) Value {
	// Build raw value string
	var (
		rawParts    []string
		significant []css.Token
	)
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			rawParts = append(rawParts, string(t.Data))
			significant = append(significant, t)
		} else if len(rawParts) > 0 {
			// Add space between non-whitespace tokens
			rawParts = append(rawParts, " ")
		}
	}
	raw := strings.TrimSpace(strings.Join(rawParts, ""))

	val := Value{Raw: raw}
	if len(significant) != 1 {
		// Function calls and multi-value properties are kept as keyword
		val.Keyword = raw
		return val
	}

	t := significant[0]
	switch t.TokenType {
	case css.DimensionToken:
		val.Value, val.Unit = parseDimension(string(t.Data))
	case css.PercentageToken:
		val.Value, _ = strconv.ParseFloat(strings.TrimSuffix(string(t.Data), "%"), 64)
		val.Unit = "%"
	case css.NumberToken:
		val.Value, _ = strconv.ParseFloat(string(t.Data), 64)
	case css.IdentToken:
		val.Keyword = strings.ToLower(string(t.Data))
	case css.StringToken:
		val.Keyword = unquote(string(t.Data))
	case css.HashToken:
		// Color value
		val.Keyword = string(t.Data)
	default:
		val.Keyword = raw
	}
	return val
}

// parseDimension extracts numeric value and unit from dimension token.
func parseDimension(s string) (float64, string) {
	// Find where number ends
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}

	if numEnd == 0 {
		return 0, ""
	}

	num, _ := strconv.ParseFloat(s[:numEnd], 64)
	unit := strings.ToLower(s[numEnd:])
	return num, unit
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// parseMediaQueryFromTokens parses a media query from CSS tokens.
// Handles queries like "(min-width: 768px)", "screen and (max-width: 40em)",
// "not print".
func parseMediaQueryFromTokens(tokens []css.Token) MediaQuery {
	mq := MediaQuery{}

	// Build raw string
	var rawParts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			rawParts = append(rawParts, string(t.Data))
		} else if len(rawParts) > 0 {
			rawParts = append(rawParts, " ")
		}
	}
	mq.Raw = strings.TrimSpace(strings.Join(rawParts, ""))

	// Format: [not|only] [type] [and] (feature: value) [and (feature: value)]...
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		switch t.TokenType {
		case css.LeftParenthesisToken:
			var feature MediaFeature
			var value []css.Token
			inValue := false
			for i++; i < len(tokens) && tokens[i].TokenType != css.RightParenthesisToken; i++ {
				switch {
				case inValue:
					value = append(value, tokens[i])
				case tokens[i].TokenType == css.ColonToken:
					inValue = true
				case tokens[i].TokenType == css.IdentToken && feature.Name == "":
					feature.Name = strings.ToLower(string(tokens[i].Data))
				}
			}
			if inValue {
				feature.Value = parsePropertyValue(value)
			}
			if feature.Name != "" {
				mq.Features = append(mq.Features, feature)
			}

		case css.IdentToken:
			ident := strings.ToLower(string(t.Data))
			switch ident {
			case "and", "only":
			case "not":
				if mq.Type == "" {
					mq.Negated = true
				}
			default:
				if mq.Type == "" {
					mq.Type = ident
				}
			}
		}
	}

	return mq
}

// parseMediaBlockRules parses rules inside an @media block and returns them.
func (p *Parser) parseMediaBlockRules(parser *css.Parser, sheet *Stylesheet) []Rule {
	var (
		rules   []Rule
		pending []string
	)
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndAtRuleGrammar:
			return rules

		case css.QualifiedRuleGrammar:
			pending = append(pending, parseSelector(data, parser.Values()))

		case css.BeginRulesetGrammar:
			rules = append(rules, p.parseRuleset(parser, groupSelectors(&pending, parseSelector(data, parser.Values())), sheet))

		case css.BeginAtRuleGrammar:
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule inside @media: "+string(data))
			p.skipAtRuleBlock(parser)

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			sheet.Warnings = append(sheet.Warnings, "declaration directly inside @media: "+string(data))
		}
	}
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
