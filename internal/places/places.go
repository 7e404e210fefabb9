// Package places provides the static list of places offered while composing
// a mention.
package places

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/marcus/placenotes/internal/mention"
	"github.com/marcus/placenotes/internal/typeahead"
)

// builtin is the default Seattle list.
var builtin = []typeahead.Suggestion{
	{ID: "1", Name: "Canon", Address: "928 12th Ave, Capitol Hill"},
	{ID: "2", Name: "Bathtub Gin & Co", Address: "2205 2nd Ave, Belltown"},
	{ID: "3", Name: "The Walrus and the Carpenter", Address: "4743 Ballard Ave NW, Ballard"},
	{ID: "4", Name: "Fremont Brewing", Address: "1050 N 34th St, Fremont"},
	{ID: "5", Name: "Radiator Whiskey", Address: "94 Pike St #30, Pike Place Market"},
	{ID: "6", Name: "Unicorn", Address: "1118 E Pike St, Capitol Hill"},
	{ID: "7", Name: "The Collective on First", Address: "400 Dexter Ave N, South Lake Union"},
	{ID: "8", Name: "Navy Strength", Address: "2505 2nd Ave, Belltown"},
	{ID: "9", Name: "Rob Roy", Address: "2332 2nd Ave, Belltown"},
	{ID: "10", Name: "Flatstick Pub", Address: "240 2nd Ave S, Pioneer Square"},
	{ID: "11", Name: "The Crocodile", Address: "2200 2nd Ave, Belltown"},
	{ID: "12", Name: "Bourbon & Bones", Address: "625 1st Ave, Pioneer Square"},
	{ID: "13", Name: "Tavern Law", Address: "1406 12th Ave, Capitol Hill"},
	{ID: "14", Name: "Witness Bar", Address: "410 Broadway E, Capitol Hill"},
	{ID: "15", Name: "Queen City Grill", Address: "2201 1st Ave, Belltown"},
	{ID: "16", Name: "The Lodge Sports Grille", Address: "16011 Aurora Ave N, Shoreline"},
	{ID: "17", Name: "Capitol Cider", Address: "818 E Pike St, Capitol Hill"},
	{ID: "18", Name: "Rhein Haus Seattle", Address: "912 12th Ave, Capitol Hill"},
	{ID: "19", Name: "Outlander Brewery", Address: "225 N 36th St, Fremont"},
	{ID: "20", Name: "Holy Mountain Brewing", Address: "1421 Elliott Ave W, Interbay"},
}

// Default returns a copy of the built-in list.
func Default() []typeahead.Suggestion {
	return append([]typeahead.Suggestion(nil), builtin...)
}

type file struct {
	Places []typeahead.Suggestion `yaml:"places"`
}

// Load reads a places file. An empty path returns the built-in list.
//
//	places:
//	  - id: "1"
//	    name: Canon
//	    address: 928 12th Ave, Capitol Hill
func Load(path string) ([]typeahead.Suggestion, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read places: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML places document.
func Parse(data []byte) ([]typeahead.Suggestion, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse places: %w", err)
	}
	if err := Validate(f.Places); err != nil {
		return nil, err
	}
	return f.Places, nil
}

// Validate checks that every place has a unique id and can be written as a
// mention token.
func Validate(list []typeahead.Suggestion) error {
	seen := make(map[string]bool, len(list))
	var errs []error
	for i, p := range list {
		p.Name = strings.TrimSpace(p.Name)
		if _, err := mention.Encode(p.Name, p.ID); err != nil {
			errs = append(errs, fmt.Errorf("place %d (%q): %w", i, p.Name, err))
			continue
		}
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("place %d: duplicate id %q", i, p.ID))
		}
		seen[p.ID] = true
	}
	return errors.Join(errs...)
}

// ByID returns the place with the given id.
func ByID(list []typeahead.Suggestion, id string) (typeahead.Suggestion, bool) {
	for _, p := range list {
		if p.ID == id {
			return p, true
		}
	}
	return typeahead.Suggestion{}, false
}
