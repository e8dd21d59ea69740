// Package curriculum imports topic/subtopic structures from JSON into
// the catalog. Import is idempotent: topics and subtopics match by
// name within their parent, so re-importing an updated file adjusts
// icons and ordering without duplicating rows.
package curriculum

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mathsinbites/bitesmith/internal/store"
)

// Topic is one entry of the import file: a topic name with its
// ordered subtopic names.
type Topic struct {
	Name      string   `json:"name"`
	Icon      string   `json:"icon,omitempty"`
	Subtopics []string `json:"subtopics"`
}

// Summary reports what an import touched.
type Summary struct {
	Topics    int
	Subtopics int
}

// Importer writes curriculum files into the catalog.
type Importer struct {
	catalog store.CatalogRepo
}

func NewImporter(catalog store.CatalogRepo) *Importer {
	return &Importer{catalog: catalog}
}

// Parse validates raw JSON into topics. The file is an array of
// {name, icon?, subtopics[]}; every topic needs a name and at least
// one subtopic.
func Parse(raw []byte) ([]Topic, error) {
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var topics []Topic
	if err := json.Unmarshal(raw, &topics); err != nil {
		return nil, fmt.Errorf("parse curriculum: %w", err)
	}

	for i := range topics {
		topics[i].Name = strings.TrimSpace(topics[i].Name)
		kept := topics[i].Subtopics[:0]
		for _, s := range topics[i].Subtopics {
			if s = strings.TrimSpace(s); s != "" {
				kept = append(kept, s)
			}
		}
		topics[i].Subtopics = kept
		if len(topics[i].Subtopics) == 0 {
			return nil, fmt.Errorf("topic %q has no subtopics", topics[i].Name)
		}
	}

	return topics, nil
}

// Import upserts the topics into the given learning path, preserving
// the file order as sort order.
func (im *Importer) Import(ctx context.Context, pathID string, topics []Topic) (Summary, error) {
	var sum Summary

	for ti, topic := range topics {
		topicID, err := im.catalog.UpsertTopic(ctx, pathID, topic.Name, topic.Icon, ti)
		if err != nil {
			return sum, fmt.Errorf("topic %q: %w", topic.Name, err)
		}
		sum.Topics++

		for si, sub := range topic.Subtopics {
			if _, err := im.catalog.UpsertSubtopic(ctx, topicID, sub, si); err != nil {
				return sum, fmt.Errorf("topic %q, subtopic %q: %w", topic.Name, sub, err)
			}
			sum.Subtopics++
		}
	}

	return sum, nil
}
