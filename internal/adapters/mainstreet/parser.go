package mainstreet

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"littlemaestros/internal/domain"
)

// Informal markup contract of the MainStreet class table. These markers and
// the column order are the only structure the page guarantees.
const (
	tableMarker = "classTable"
	rowMarker   = "classTableItemTR"
	cellMarker  = "classTableItemTD"
	tableAnchor = `id="ctl04_ctl00_phClassesClassTable"`

	// Label used when the page carries no season token at all.
	defaultSessionName = "Spring 2026"

	tableSampleLen = 3000
	firstRowsMax   = 2
)

var (
	seasonPattern   = regexp.MustCompile(`(?i)(?:Spring|Summer|Fall|Winter)\s+\d{4}`)
	schedulePattern = regexp.MustCompile(`(?i)(\w+)\s+(\d{1,2}:\d{2}\s*(?:AM|PM))`)
	datePattern     = regexp.MustCompile(`(\w+)\s+(\d{1,2}),?\s*(\d{4})`)
	registerPattern = regexp.MustCompile(`(?i)register\.aspx\?cls=(\d+)`)
	slugPattern     = regexp.MustCompile(`[^a-z0-9]+`)
	rowTagPattern   = regexp.MustCompile(`(?i)<tr[^>]*class="classTableItemTR[^"]*"[^>]*>`)
	spacePattern    = regexp.MustCompile(`\s+`)
)

var monthIndex = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

type htmlParser struct {
	baseURL string
}

// NewParser returns a SessionParser for the MainStreet booking page.
// Registration links are resolved against baseURL.
func NewParser(baseURL string) domain.SessionParser {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &htmlParser{baseURL: baseURL}
}

func (p *htmlParser) Parse(html string) ([]domain.ParsedSession, int) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, 0
	}

	sessionName := defaultSessionName
	if m := seasonPattern.FindString(html); m != "" {
		sessionName = m
	}

	var sessions []domain.ParsedSession
	skipped := 0

	doc.Find(`tr[class*="` + rowMarker + `"]`).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find(`td[class*="` + cellMarker + `"]`).Map(func(_ int, cell *goquery.Selection) string {
			return normalizeText(cell.Text())
		})
		// Columns: Class/Location, Schedule, Start Date, Duration, Instructor, Register
		if len(cells) < 5 {
			skipped++
			return
		}
		locationName := cells[0]
		schedule := cells[1]
		startDateStr := cells[2]
		duration := cells[3]
		instructor := cells[4]

		dayOfWeek, classTime := "", ""
		if m := schedulePattern.FindStringSubmatch(schedule); m != nil {
			dayOfWeek = m[1]
			classTime = m[2]
		}

		if locationName == "" || dayOfWeek == "" || classTime == "" {
			skipped++
			return
		}

		registerPath := registerLink(row)
		if instructor == "" {
			instructor = "TBD"
		}

		sessions = append(sessions, domain.ParsedSession{
			SessionName:   sessionName,
			LocationName:  locationName,
			DayOfWeek:     dayOfWeek,
			Time:          classTime,
			StartDate:     parseStartDate(startDateStr),
			Duration:      duration,
			Instructor:    instructor,
			MainstreetURL: p.baseURL + registerPath,
			MainstreetID:  deriveMainstreetID(registerPath, locationName, dayOfWeek, classTime),
		})
	})

	return sessions, skipped
}

func (p *htmlParser) Diagnose(html string) domain.SyncDebug {
	rowTags := rowTagPattern.FindAllString(html, -1)

	sample := "table not found"
	if idx := strings.Index(html, tableAnchor); idx >= 0 {
		end := idx + tableSampleLen
		if end > len(html) {
			end = len(html)
		}
		sample = html[idx:end]
	}

	firstRows := rowTags
	if len(firstRows) > firstRowsMax {
		firstRows = firstRows[:firstRowsMax]
	}

	return domain.SyncDebug{
		HasTable:      strings.Contains(html, tableMarker),
		HasItemRows:   strings.Contains(html, rowMarker),
		HasItemCells:  strings.Contains(html, cellMarker),
		RowMatchCount: len(rowTags),
		HTMLLength:    len(html),
		TableSample:   sample,
		FirstRows:     firstRows,
	}
}

// registerLink returns the relative registration href from the row, or "".
func registerLink(row *goquery.Selection) string {
	link := ""
	row.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if registerPattern.MatchString(href) {
			link = href
			return false
		}
		return true
	})
	return link
}

// normalizeText collapses all whitespace (including non-breaking spaces,
// which goquery decodes from &nbsp;) into single spaces.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}

// parseStartDate parses "Mar 03, 2026" style dates using the first three
// letters of the month token. An unparseable string falls back to the
// current time, matching the booking page importer's historical behavior.
func parseStartDate(s string) time.Time {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return time.Now()
	}
	monthTok := strings.ToLower(m[1])
	if len(monthTok) > 3 {
		monthTok = monthTok[:3]
	}
	month, ok := monthIndex[monthTok]
	if !ok {
		month = time.January
	}
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// deriveMainstreetID returns the stable reconciliation key for a row:
// "cls-<id>" from the registration link when present, otherwise a
// lowercase hyphen slug of location, day, and time.
func deriveMainstreetID(registerPath, locationName, dayOfWeek, classTime string) string {
	if m := registerPattern.FindStringSubmatch(registerPath); m != nil {
		return "cls-" + m[1]
	}
	slug := strings.ToLower(locationName + "-" + dayOfWeek + "-" + classTime)
	return slugPattern.ReplaceAllString(slug, "-")
}
