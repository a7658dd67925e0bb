package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// legacyHeader selects the name cell of the old table layout; the next row holds the details.
const legacyHeader = `td[bgcolor="#B1300D"]`

var (
	vitaPattern     = regexp.MustCompile(`(?i)Vita\s*:\s*(-?\d+)`)
	manaPattern     = regexp.MustCompile(`(?i)Mana\s*:\s*(-?\d+)`)
	stackPattern    = regexp.MustCompile(`(?i)Max\.?\s*Held\s*in\s*1\s*Slot\s*:\s*(\d+)`)
	craftsPattern   = regexp.MustCompile(`(?i)Crafts\s*:\s*([\s\S]*?)(?:\n\s*[A-Z][^:\n]+:|$)`)
	otherPattern    = regexp.MustCompile(`(?i)Other Uses\s*:\s*([\s\S]*?)(?:\n\s*[A-Z][^:\n]+:|$)`)
	effectPattern   = regexp.MustCompile(`(?i)Effect\s*:\s*([^\n]+)`)
	obtainPattern   = regexp.MustCompile(`(?i)How to Obtain\s*:\s*([\s\S]*?)(?:\n\s*[A-Z][^:\n]+:|$)`)
	commentsPattern = regexp.MustCompile(`(?i)Comments\s*:\s*([^\n]+)`)
	npcBuysPattern  = regexp.MustCompile(`(?i)NPC\s*Buys\s*:\s*(-?\d+)`)
	anyFieldPattern = regexp.MustCompile(`(?i)Vita\s*:|Mana\s*:|How to Obtain\s*:|Crafts\s*:|Other Uses\s*:|NPC\s*Buys\s*:`)

	listSeparator = regexp.MustCompile(`[\n,;]`)
	slugPattern   = regexp.MustCompile(`[^a-z0-9]+`)
	spacePattern  = regexp.MustCompile(`\s+`)
)

// Extract parses one item page. The legacy table extractor is preferred when its header cells are
// present and yields items; otherwise the generic extractor runs.
func Extract(doc *goquery.Document) (records []Record, extractor string) {
	breaksToNewlines(doc.Selection)

	if doc.Find(legacyHeader).Length() > 0 {
		if records := ExtractLegacy(doc); len(records) > 0 {
			return records, "legacy"
		}
	}
	return ExtractGeneric(doc), "generic"
}

// ExtractLegacy reads the old layout: a red header cell with the bold item name, followed by a row
// whose cells hold the stats (left) and the effect and obtain notes (right). A leading image cell is
// skipped.
func ExtractLegacy(doc *goquery.Document) []Record {
	var records []Record

	doc.Find(legacyHeader).Each(func(_ int, td *goquery.Selection) {
		name := normText(td.Find("b").First().Text())
		if name == "" {
			return
		}

		cells := td.Closest("tr").NextFiltered("tr").ChildrenFiltered("td")
		if cells.Length() < 2 {
			return
		}

		left, right := cells.Eq(0), cells.Eq(1)
		if left.Find("img").Length() > 0 {
			left, right = cells.Eq(1), cells.Eq(2)
		}

		records = append(records, parseFields(name, left.Text(), right.Text()))
	})

	return records
}

// ExtractGeneric scans rows and item blocks whose text mentions a known field and takes the first
// heading or bold text as the name.
func ExtractGeneric(doc *goquery.Document) []Record {
	var records []Record

	doc.Find("tr, .row, .item").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len(text) < 40 || !anyFieldPattern.MatchString(text) {
			return
		}

		name := normText(s.Find("h1, h2, h3, h4, strong, b").First().Text())
		if name == "" {
			return
		}

		records = append(records, parseFields(name, text, text))
	})

	return records
}

// parseFields reads the stat fields from left and the note fields from right.
func parseFields(name, left, right string) Record {
	rec := newRecord(name)

	if v, ok := matchInt(vitaPattern, left); ok {
		rec.Stats.Set("Vita", v)
	}
	if v, ok := matchInt(manaPattern, left); ok {
		rec.Stats.Set("Mana", v)
	}
	if v, ok := matchInt(stackPattern, left); ok {
		rec.StackSize = &v
	}

	rec.Crafts = uniq(parseList(craftsPattern, left))
	rec.OtherUses = uniq(parseList(otherPattern, left))
	rec.Effect = parseNote(effectPattern, right)
	rec.Comments = parseNote(commentsPattern, right)

	if m := obtainPattern.FindStringSubmatch(right); m != nil {
		rec.Obtain = uniq(strings.Split(m[1], "\n"))
	}
	if v, ok := matchInt(npcBuysPattern, right); ok {
		rec.NPCBuys = &v
	}

	return rec
}

func matchInt(re *regexp.Regexp, text string) (float64, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return float64(n), true
}

func parseList(re *regexp.Regexp, text string) []string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	payload := strings.TrimSpace(m[1])
	if strings.EqualFold(payload, "none") {
		return nil
	}
	return listSeparator.Split(payload, -1)
}

func parseNote(re *regexp.Regexp, text string) *string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v := normText(m[1])
	if v == "" || strings.EqualFold(v, "none") {
		return nil
	}
	return &v
}

// breaksToNewlines turns <br> into line breaks so field labels start on their own line in Text().
func breaksToNewlines(s *goquery.Selection) {
	s.Find("br").ReplaceWithHtml("\n")
}

func slugify(name string) string {
	return strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(name), "_"), "_")
}

func normText(s string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}

// uniq normalizes whitespace, drops empty entries and keeps the first of each duplicate.
// It returns nil when nothing is left.
func uniq(values []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = normText(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
