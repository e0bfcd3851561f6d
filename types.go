package wattpad

import "context"

// Record fields are pointers (or nilable slices): the API returns only what
// the field selection asked for, and an absent field stays nil instead of
// collapsing into a zero value.

// User is a full user profile.
type User struct {
	Username            *string  `json:"username"`
	Avatar              *string  `json:"avatar"`
	IsPrivate           *bool    `json:"isPrivate"`
	BackgroundURL       *string  `json:"backgroundUrl"`
	Name                *string  `json:"name"`
	FullName            *string  `json:"fullname"`
	Description         *string  `json:"description"`
	Badges              []string `json:"badges"`
	Status              *string  `json:"status"`
	Gender              *string  `json:"gender"`
	GenderCode          *string  `json:"genderCode"`
	Language            *int64   `json:"language"`
	Locale              *string  `json:"locale"`
	CreateDate          *string  `json:"createDate"`
	ModifyDate          *string  `json:"modifyDate"`
	Location            *string  `json:"location"`
	Verified            *bool    `json:"verified"`
	Ambassador          *bool    `json:"ambassador"`
	Facebook            *string  `json:"facebook"`
	Website             *string  `json:"website"`
	Lulu                *string  `json:"lulu"`
	Smashwords          *string  `json:"smashwords"`
	Bubok               *string  `json:"bubok"`
	VotesReceived       *int64   `json:"votesReceived"`
	NumStoriesPublished *int64   `json:"numStoriesPublished"`
	NumFollowing        *int64   `json:"numFollowing"`
	NumFollowers        *int64   `json:"numFollowers"`
	NumMessages         *int64   `json:"numMessages"`
	NumLists            *int64   `json:"numLists"`
	VerifiedEmail       *bool    `json:"verified_email"`
	PreferredCategories []string `json:"preferred_categories"`
	AllowCrawler        *bool    `json:"allowCrawler"`
	Deeplink            *string  `json:"deeplink"`
}

// UserStub is the lightweight author object embedded in other resources.
// Note the API calls the stub's username "name".
type UserStub struct {
	Username *string `json:"name"`
	Avatar   *string `json:"avatar"`
	FullName *string `json:"fullname"`
	Verified *bool   `json:"verified"`
}

// FetchFullProfile fetches the full profile behind the stub with the
// default user fields. It returns a MissingRequiredFieldError when the stub
// carries no username.
func (s *UserStub) FetchFullProfile(ctx context.Context, client *Client) (*User, error) {
	if s.Username == nil {
		return nil, &MissingRequiredFieldError{
			Field:   "username",
			Context: "cannot fetch a full profile from a stub without a username",
		}
	}
	return client.User.Get(ctx, *s.Username, nil)
}

// Language identifies the language a story is written in.
type Language struct {
	ID   *uint64 `json:"id"`
	Name *string `json:"name"`
}

// Story is a full story record.
type Story struct {
	ID                 *string        `json:"id"`
	Title              *string        `json:"title"`
	Length             *int64         `json:"length"`
	CreateDate         *string        `json:"createDate"`
	ModifyDate         *string        `json:"modifyDate"`
	VoteCount          *int64         `json:"voteCount"`
	ReadCount          *int64         `json:"readCount"`
	CommentCount       *int64         `json:"commentCount"`
	Language           *Language      `json:"language"`
	User               *UserStub      `json:"user"`
	Description        *string        `json:"description"`
	Cover              *string        `json:"cover"`
	CoverTimestamp     *string        `json:"cover_timestamp"`
	Completed          *bool          `json:"completed"`
	Categories         []int64        `json:"categories"`
	Tags               []string       `json:"tags"`
	Rating             *int64         `json:"rating"`
	Mature             *bool          `json:"mature"`
	Copyright          *int64         `json:"copyright"`
	URL                *string        `json:"url"`
	NumParts           *int64         `json:"numParts"`
	FirstPartID        *int64         `json:"firstPartId"`
	FirstPublishedPart *PartReference `json:"firstPublishedPart"`
	LastPublishedPart  *PartReference `json:"lastPublishedPart"`
	Parts              []PartStub     `json:"parts"`
	Deleted            *bool          `json:"deleted"`
}

// Part is a full story part record.
type Part struct {
	ID              *uint64  `json:"id"`
	Title           *string  `json:"title"`
	URL             *string  `json:"url"`
	TextURL         *TextURL `json:"text_url"`
	Rating          *int64   `json:"rating"`
	Draft           *bool    `json:"draft"`
	ModifyDate      *string  `json:"modifyDate"`
	CreateDate      *string  `json:"createDate"`
	HasBannedImages *bool    `json:"hasBannedImages"`
	Length          *int64   `json:"length"`
	VideoID         *string  `json:"videoId"`
	PhotoURL        *string  `json:"photoUrl"`
	CommentCount    *int64   `json:"commentCount"`
	VoteCount       *int64   `json:"voteCount"`
	ReadCount       *int64   `json:"readCount"`
	GroupID         *string  `json:"groupId"`
	Voted           *bool    `json:"voted"`
	Group           *Story   `json:"group"`
	Deleted         *bool    `json:"deleted"`
}

// PartStub is the lightweight part record embedded in a story's part list.
type PartStub struct {
	ID              *uint64  `json:"id"`
	Title           *string  `json:"title"`
	URL             *string  `json:"url"`
	TextURL         *TextURL `json:"text_url"`
	Rating          *int64   `json:"rating"`
	Draft           *bool    `json:"draft"`
	CreateDate      *string  `json:"createDate"`
	ModifyDate      *string  `json:"modifyDate"`
	HasBannedImages *bool    `json:"hasBannedImages"`
	Length          *int64   `json:"length"`
	VideoID         *string  `json:"videoId"`
	PhotoURL        *string  `json:"photoUrl"`
	CommentCount    *int64   `json:"commentCount"`
	VoteCount       *int64   `json:"voteCount"`
	ReadCount       *int64   `json:"readCount"`
	Voted           *bool    `json:"voted"`
	Deleted         *bool    `json:"deleted"`
}

// FetchFullPart fetches the full part behind the stub with the default part
// fields. It returns a MissingRequiredFieldError when the stub carries no
// id.
func (s *PartStub) FetchFullPart(ctx context.Context, client *Client) (*Part, error) {
	if s.ID == nil {
		return nil, &MissingRequiredFieldError{
			Field:   "id",
			Context: "cannot fetch a full part from a stub without an id",
		}
	}
	return client.Story.Part(ctx, *s.ID, nil)
}

// PartReference is a minimal pointer to a part, carrying just enough to
// fetch the full record.
type PartReference struct {
	ID         *uint64 `json:"id"`
	CreateDate *string `json:"createDate"`
}

// FetchFullPart fetches the full part behind the reference with the default
// part fields. It returns a MissingRequiredFieldError when the reference
// carries no id.
func (r *PartReference) FetchFullPart(ctx context.Context, client *Client) (*Part, error) {
	if r.ID == nil {
		return nil, &MissingRequiredFieldError{
			Field:   "id",
			Context: "cannot fetch a full part from a reference without an id",
		}
	}
	return client.Story.Part(ctx, *r.ID, nil)
}

// PartContent is the structured form of a part's text.
type PartContent struct {
	Text     *string `json:"text"`
	TextHash *string `json:"text_hash"`
}

// TextURL locates a part's text content, which is served from an expiring
// URL.
type TextURL struct {
	Text         *string `json:"text"`
	RefreshToken *string `json:"refresh_token"`
}
