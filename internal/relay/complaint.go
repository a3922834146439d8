package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"hirehack/internal/domain/complaint"
	"hirehack/internal/session"
)

// Complaints lists the user's filed complaints. The backend answers with
// either an array or a single object; both decode to a slice here.
func (c *Client) Complaints(ctx context.Context, sc session.Context, userID int) ([]complaint.Complaint, *Error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/users/get/complaint?user_id=%d", userID)
	if rerr := c.doJSON(ctx, sc, http.MethodGet, path, nil, &raw); rerr != nil {
		return nil, rerr
	}
	return decodeComplaintList(raw)
}

// RegisterComplaint files a new complaint.
func (c *Client) RegisterComplaint(ctx context.Context, sc session.Context, cm complaint.Complaint) (complaint.Complaint, *Error) {
	if cm.Title == "" || cm.Desc == "" || cm.FeatureName == "" {
		return complaint.Complaint{}, newError(KindValidation, 0, "title, description and feature name are required", nil)
	}
	var created complaint.Complaint
	if rerr := c.doJSON(ctx, sc, http.MethodPost, "/api/users/register/complaint", cm, &created); rerr != nil {
		return complaint.Complaint{}, rerr
	}
	return created, nil
}

// UpdateComplaint edits an existing complaint.
func (c *Client) UpdateComplaint(ctx context.Context, sc session.Context, complaintID string, cm complaint.Complaint) *Error {
	if complaintID == "" {
		return newError(KindValidation, 0, "complaint id is required", nil)
	}
	path := "/api/users/update/complaint?complaint_id=" + url.QueryEscape(complaintID)
	return c.doJSON(ctx, sc, http.MethodPatch, path, cm, nil)
}

// DeleteComplaint removes a complaint.
func (c *Client) DeleteComplaint(ctx context.Context, sc session.Context, complaintID string) *Error {
	if complaintID == "" {
		return newError(KindValidation, 0, "complaint id is required", nil)
	}
	path := "/api/users/delete/complaint?complaint_id=" + url.QueryEscape(complaintID)
	return c.doJSON(ctx, sc, http.MethodDelete, path, nil, nil)
}

// ComplaintDetails fetches a single complaint.
func (c *Client) ComplaintDetails(ctx context.Context, sc session.Context, complaintID string) (complaint.Complaint, *Error) {
	if complaintID == "" {
		return complaint.Complaint{}, newError(KindValidation, 0, "complaint id is required", nil)
	}
	var cm complaint.Complaint
	path := "/api/users/get-details/complaint?complaint_id=" + url.QueryEscape(complaintID)
	if rerr := c.doJSON(ctx, sc, http.MethodGet, path, nil, &cm); rerr != nil {
		return complaint.Complaint{}, rerr
	}
	return cm, nil
}

func decodeComplaintList(raw json.RawMessage) ([]complaint.Complaint, *Error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var items []complaint.Complaint
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}
	var single complaint.Complaint
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, newError(KindUpstream, 0, "unexpected complaint response shape", err)
	}
	return []complaint.Complaint{single}, nil
}
