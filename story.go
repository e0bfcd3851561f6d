package wattpad

import (
	"context"
	"net/http"
	"strconv"

	"github.com/broady/wattpad/field"
)

// StoryService provides the story and part endpoints.
type StoryService struct {
	client *Client
}

// Get fetches a story by id. An empty fields selection requests the default
// story fields.
func (s *StoryService) Get(ctx context.Context, storyID uint64, fields []field.StoryField) (*Story, error) {
	req, err := resolveFields(
		s.client.newRequest(http.MethodGet, "/api/v3/stories/"+strconv.FormatUint(storyID, 10)),
		fields, field.DefaultStoryFields)
	if err != nil {
		return nil, err
	}
	return execute[Story](ctx, req)
}

// Part fetches a single story part by id. An empty fields selection
// requests the default part fields.
func (s *StoryService) Part(ctx context.Context, partID uint64, fields []field.PartField) (*Part, error) {
	req, err := resolveFields(
		s.client.newRequest(http.MethodGet, "/api/v3/story_parts/"+strconv.FormatUint(partID, 10)),
		fields, field.DefaultPartFields)
	if err != nil {
		return nil, err
	}
	return execute[Part](ctx, req)
}

// PartText fetches the raw text of a part, without metadata.
func (s *StoryService) PartText(ctx context.Context, partID uint64) (string, error) {
	req := s.client.newRequest(http.MethodGet, "/apiv2/").
		withParam("m", "storytext").
		withParam("id", strconv.FormatUint(partID, 10))
	return executeText(ctx, req)
}

// PartContent fetches the text of a part in structured form.
func (s *StoryService) PartContent(ctx context.Context, partID uint64) (*PartContent, error) {
	req := s.client.newRequest(http.MethodGet, "/apiv2/").
		withParam("m", "storytext").
		withParam("id", strconv.FormatUint(partID, 10)).
		withParam("output", "json")
	return execute[PartContent](ctx, req)
}

// Archive downloads the text of a whole story as a single zip archive.
func (s *StoryService) Archive(ctx context.Context, storyID uint64) ([]byte, error) {
	req := s.client.newRequest(http.MethodGet, "/apiv2/").
		withParam("m", "storytext").
		withParam("group_id", strconv.FormatUint(storyID, 10)).
		withParam("output", "zip")
	return executeBytes(ctx, req)
}
