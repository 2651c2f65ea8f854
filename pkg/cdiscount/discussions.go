package cdiscount

import (
	"context"
	"strconv"
)

// DefaultTypologyCode is the typology requested when none is given.
const DefaultTypologyCode = "order"

// PatchOperation is one entry of the JSON-patch documents the discussion
// endpoints accept. The API expects the key "opt" and string values.
type PatchOperation struct {
	Op    string `json:"opt"`
	Path  string `json:"path"`
	Value string `json:"value"`
}

// DiscussionsAPI covers customer discussions and their messages.
type DiscussionsAPI struct {
	r Requester
}

// NewDiscussionsAPI creates a DiscussionsAPI over r.
func NewDiscussionsAPI(r Requester) *DiscussionsAPI {
	return &DiscussionsAPI{r: r}
}

// GetSalesChannelConfiguration returns the discussion settings of a sales channel.
func (a *DiscussionsAPI) GetSalesChannelConfiguration(ctx context.Context, salesChannelID string) (*Response, error) {
	return a.r.Get(ctx, resourcePath("/sales-channel-configurations", salesChannelID), nil, nil)
}

// GetTypologies lists discussion typologies. An empty typologyCode selects
// DefaultTypologyCode; an empty userType is omitted.
func (a *DiscussionsAPI) GetTypologies(
	ctx context.Context,
	salesChannel, orderStatus, typologyCode, userType string,
) (*Response, error) {
	if typologyCode == "" {
		typologyCode = DefaultTypologyCode
	}
	return a.r.Get(ctx, "/typologies", Params{
		"salesChannel": salesChannel,
		"orderStatus":  orderStatus,
		"typologyCode": typologyCode,
		"userType":     userType,
	}, nil)
}

// GetDiscussionsCount returns the number of discussions matching the filters.
func (a *DiscussionsAPI) GetDiscussionsCount(
	ctx context.Context,
	salesChannel, graduationCode, processStatus string,
) (*Response, error) {
	return a.r.Get(ctx, "/discussions/count", Params{
		"salesChannel":   salesChannel,
		"graduationCode": graduationCode,
		"processStatus":  processStatus,
	}, nil)
}

// GetDiscussions lists discussions.
func (a *DiscussionsAPI) GetDiscussions(ctx context.Context, params Params) (*Response, error) {
	return a.r.Get(ctx, "/discussions", params, nil)
}

// CreateDiscussion opens a new discussion.
func (a *DiscussionsAPI) CreateDiscussion(ctx context.Context, discussion any) (*Response, error) {
	return a.r.Post(ctx, "/discussions", discussion, nil)
}

// GetDiscussion returns one discussion.
func (a *DiscussionsAPI) GetDiscussion(ctx context.Context, discussionID string) (*Response, error) {
	return a.r.Get(ctx, resourcePath("/discussions", discussionID), nil, nil)
}

// UpdateDiscussion opens or closes a discussion.
func (a *DiscussionsAPI) UpdateDiscussion(ctx context.Context, discussionID string, open bool) (*Response, error) {
	patch := []PatchOperation{{Op: "replace", Path: "/isOpen", Value: strconv.FormatBool(open)}}
	return a.r.Patch(ctx, resourcePath("/discussions", discussionID), patch, nil)
}

// CloseDiscussion closes a discussion.
func (a *DiscussionsAPI) CloseDiscussion(ctx context.Context, discussionID string) (*Response, error) {
	return a.UpdateDiscussion(ctx, discussionID, false)
}

// ReopenDiscussion reopens a closed discussion.
func (a *DiscussionsAPI) ReopenDiscussion(ctx context.Context, discussionID string) (*Response, error) {
	return a.UpdateDiscussion(ctx, discussionID, true)
}

// SendMessage posts a message to a discussion. attachments is sent only
// when non-nil.
func (a *DiscussionsAPI) SendMessage(
	ctx context.Context,
	discussionID, body, receiver string,
	attachments []any,
) (*Response, error) {
	msg := map[string]any{
		"discussionId": discussionID,
		"body":         body,
		"receiver":     receiver,
	}
	if attachments != nil {
		msg["attachments"] = attachments
	}
	return a.r.Post(ctx, "/messages", msg, nil)
}

// MarkMessageAsRead flags a message as read.
func (a *DiscussionsAPI) MarkMessageAsRead(ctx context.Context, messageID string) (*Response, error) {
	patch := []PatchOperation{{Op: "replace", Path: "/hasRead", Value: "true"}}
	return a.r.Patch(ctx, resourcePath("/messages", messageID), patch, nil)
}

// GetAttachments lists discussion attachments.
func (a *DiscussionsAPI) GetAttachments(ctx context.Context) (*Response, error) {
	return a.r.Get(ctx, "/attachments", nil, nil)
}
