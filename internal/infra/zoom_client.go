package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Meeting struct {
	MeetingID string `json:"meetingId"`
	JoinURL   string `json:"joinUrl"`
}

type ZoomClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewZoomClient(baseURL, token string, timeout time.Duration) *ZoomClient {
	return &ZoomClient{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type meetingRequest struct {
	Topic     string    `json:"topic"`
	StartTime time.Time `json:"start_time"`
	Duration  int       `json:"duration"`
}

func (c *ZoomClient) CreateMeeting(ctx context.Context, topic string, startTime time.Time, durationMinutes int) (*Meeting, error) {
	body, _ := json.Marshal(meetingRequest{Topic: topic, StartTime: startTime, Duration: durationMinutes})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users/me/meetings", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("zoom returned status %d", resp.StatusCode)
	}

	var out struct {
		ID      int64  `json:"id"`
		JoinURL string `json:"join_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &Meeting{MeetingID: fmt.Sprintf("%d", out.ID), JoinURL: out.JoinURL}, nil
}

func (c *ZoomClient) CancelMeeting(ctx context.Context, meetingID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/meetings/"+meetingID, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("zoom returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *ZoomClient) RescheduleMeeting(ctx context.Context, meetingID string, startTime time.Time, durationMinutes int) error {
	body, _ := json.Marshal(meetingRequest{StartTime: startTime, Duration: durationMinutes})
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.baseURL+"/meetings/"+meetingID, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("zoom returned status %d", resp.StatusCode)
	}
	return nil
}
