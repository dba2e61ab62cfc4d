package pug

import (
	"context"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/turtacn/pubchem-go/internal/jsonx"
	"github.com/turtacn/pubchem-go/pkg/errors"
)

// Pictogram is one GHS pictogram reference from a compound's safety record.
type Pictogram struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// SafetyData aggregates the GHS classification of a compound as reported
// by the PUG View "Safety and Hazards" heading.
type SafetyData struct {
	Pictograms         []Pictogram `json:"pictograms"`
	HazardCodes        []string    `json:"hazard_codes"`
	PrecautionaryCodes []string    `json:"precautionary_codes"`
}

var precautionaryRe = regexp.MustCompile(`[P0-9+]{3,30}`)

// SafetyData fetches and parses the GHS safety classification for a
// compound from the PUG View endpoint.  Hazard and precautionary code
// lists are deduplicated and sorted.
func (c *Client) SafetyData(ctx context.Context, cid int) (*SafetyData, error) {
	if cid == 0 {
		return nil, errors.InvalidParam("cid cannot be zero")
	}
	u := c.viewURL + "/" + strconv.Itoa(cid) + "/JSON?heading=" + url.QueryEscape("Safety and Hazards")
	body, err := c.do(ctx, &Spec{Method: "GET", URL: u})
	if err != nil {
		return nil, err
	}
	var record map[string]interface{}
	if err := unmarshalJSON(body, &record); err != nil {
		return nil, err
	}
	return parseSafetyData(record)
}

// parseSafetyData walks the fixed Record.Section[0].Section[0].Section[0]
// nesting of the safety heading down to its GHS information entries.
func parseSafetyData(record map[string]interface{}) (*SafetyData, error) {
	level := jsonx.Slice(jsonx.Dig(record, "Record", "Section"))
	for depth := 0; depth < 2; depth++ {
		if len(level) == 0 {
			return nil, errors.ResponseParse("missing safety section nesting")
		}
		level = jsonx.Slice(jsonx.Map(level[0])["Section"])
	}
	if len(level) == 0 {
		return nil, errors.ResponseParse("missing safety section nesting")
	}
	info := jsonx.Slice(jsonx.Map(level[0])["Information"])
	if info == nil {
		return nil, errors.ResponseParse("missing GHS information list")
	}

	sd := &SafetyData{
		Pictograms:         []Pictogram{},
		HazardCodes:        []string{},
		PrecautionaryCodes: []string{},
	}
	for _, raw := range info {
		entry := jsonx.Map(raw)
		name, _ := jsonx.String(entry["Name"])
		switch name {
		case "Pictogram(s)":
			sd.addPictograms(entry)
		case "GHS Hazard Statements":
			sd.addHazards(entry)
		case "Precautionary Statement Codes":
			sd.addPrecautionary(entry)
		}
	}
	sort.Strings(sd.HazardCodes)
	sort.Strings(sd.PrecautionaryCodes)
	return sd, nil
}

func (sd *SafetyData) addPictograms(entry map[string]interface{}) {
	markups := jsonx.Slice(jsonx.Dig(entry, "Value", "StringWithMarkup"))
	if len(markups) == 0 {
		return
	}
	for _, raw := range jsonx.Slice(jsonx.Map(markups[0])["Markup"]) {
		m := jsonx.Map(raw)
		u, _ := jsonx.String(m["URL"])
		label, _ := jsonx.String(m["Extra"])
		icon := u
		if idx := strings.LastIndexByte(u, '/'); idx >= 0 {
			icon = u[idx+1:]
		}
		p := Pictogram{Icon: icon, Label: label}
		if !containsPictogram(sd.Pictograms, p) {
			sd.Pictograms = append(sd.Pictograms, p)
		}
	}
}

func (sd *SafetyData) addHazards(entry map[string]interface{}) {
	for _, raw := range jsonx.Slice(jsonx.Dig(entry, "Value", "StringWithMarkup")) {
		s, _ := jsonx.String(jsonx.Map(raw)["String"])
		// Hazard statements lead with their H-code, e.g. "H225: Highly
		// flammable liquid and vapour".
		if len(s) >= 4 && s[0] == 'H' && isDigits(s[1:4]) {
			code := s[:4]
			if !containsString(sd.HazardCodes, code) {
				sd.HazardCodes = append(sd.HazardCodes, code)
			}
		}
	}
}

func (sd *SafetyData) addPrecautionary(entry map[string]interface{}) {
	for _, raw := range jsonx.Slice(jsonx.Dig(entry, "Value", "StringWithMarkup")) {
		s, _ := jsonx.String(jsonx.Map(raw)["String"])
		for _, code := range precautionaryRe.FindAllString(s, -1) {
			if !containsString(sd.PrecautionaryCodes, code) {
				sd.PrecautionaryCodes = append(sd.PrecautionaryCodes, code)
			}
		}
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func containsString(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}

func containsPictogram(list []Pictogram, p Pictogram) bool {
	for _, e := range list {
		if e == p {
			return true
		}
	}
	return false
}
