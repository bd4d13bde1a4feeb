package fbref

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/riskibarqy/player-stats-etl/internal/domain/playerstats"
)

// ParseSquadPage reads the first table body of a squad page. Rows without a positive
// games count (section headers, unused substitutes) are dropped. A page without any
// table body yields no records.
func ParseSquadPage(r io.Reader, teamName, origin string) ([]playerstats.RawRecord, error) {
	page, err := parseSquadPage(r, teamName, origin)
	if err != nil {
		return nil, err
	}
	return page.records, nil
}

type squadPage struct {
	records []playerstats.RawRecord
	// missingOptional lists declared optional identifiers no row carried.
	missingOptional []string
}

func parseSquadPage(r io.Reader, teamName, origin string) (squadPage, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return squadPage{}, fmt.Errorf("parse html: %w", err)
	}
	return parseSquadDocument(doc, teamName, origin)
}

// parseSquadDocument reads the first tbody. Rows without data-stat cells contribute
// nothing, so the column contract is only checked once some row carries identifiers.
func parseSquadDocument(doc *goquery.Document, teamName, origin string) (squadPage, error) {
	tbody := doc.Find("tbody").First()
	if tbody.Length() == 0 {
		return squadPage{records: []playerstats.RawRecord{}}, nil
	}

	rows := tbody.Find("tr")
	seen := make(map[string]struct{})
	out := make([]playerstats.RawRecord, 0, rows.Length())
	rows.Each(func(_ int, row *goquery.Selection) {
		raw := parseRow(row, teamName, origin, seen)
		if playerstats.HasAppearances(raw) {
			out = append(out, raw)
		}
	})

	page := squadPage{records: out}
	if len(seen) == 0 {
		return page, nil
	}

	missingOptional, err := playerstats.CheckColumns(seen)
	if err != nil {
		return squadPage{}, err
	}
	page.missingOptional = missingOptional
	return page, nil
}

// parseRow fills the team first, then the player header cell, then every td; a later
// source overwrites an earlier one under the same key.
func parseRow(row *goquery.Selection, teamName, origin string, seen map[string]struct{}) playerstats.RawRecord {
	raw := playerstats.RawRecord{playerstats.KeyTeam: teamName}

	th := row.Find(`th[data-stat="player"]`).First()
	if th.Length() > 0 {
		seen[playerstats.KeyPlayer] = struct{}{}
		raw[playerstats.KeyPlayerName] = strings.TrimSpace(th.Text())
		if href, ok := th.Find("a").First().Attr("href"); ok {
			if link := AbsoluteURL(origin, href); link != "" {
				raw[playerstats.KeyPlayerURL] = link
			}
		}
	}

	row.Find("td").Each(func(_ int, td *goquery.Selection) {
		key := td.AttrOr("data-stat", "")
		if key == "" {
			return
		}
		seen[key] = struct{}{}
		raw[key] = strings.TrimSpace(td.Text())
	})

	return raw
}

// AbsoluteURL prefixes relative player links with the site origin.
func AbsoluteURL(origin, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if parsed, err := url.Parse(href); err == nil && parsed.IsAbs() {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return strings.TrimRight(origin, "/") + href
}
