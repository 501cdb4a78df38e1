// Package analytics holds the request bodies the video-analytics server
// expects when creating smart_va and object_in_zone configurations.
//
// The bodies are fixed templates; only stream_id varies between requests.
package analytics

import (
	"fmt"

	"github.com/fpang/va-creator/internal/grammar"
)

const (
	smartVAPath      = "/api/v2/smart_va/analytics"
	objectInZonePath = "/api/v2/object_in_zone/analytics"
)

// Endpoint returns the server path that creates analytics of type t.
func Endpoint(t grammar.AnalyticsType) (string, error) {
	switch t {
	case grammar.SmartVA:
		return smartVAPath, nil
	case grammar.ObjectDetection:
		return objectInZonePath, nil
	default:
		return "", fmt.Errorf("no endpoint for analytics type %s", t)
	}
}

// NewPayload builds the JSON body for one stream.
func NewPayload(t grammar.AnalyticsType, streamID int) (*Payload, error) {
	switch t {
	case grammar.SmartVA:
		return newSmartVA(streamID), nil
	case grammar.ObjectDetection:
		return newObjectInZone(streamID), nil
	default:
		return nil, fmt.Errorf("no payload for analytics type %s", t)
	}
}

// Payload is the top level create-analytics request.
type Payload struct {
	Type               string             `json:"type"`
	StreamID           int                `json:"stream_id"`
	AllowedServerIDs   []int              `json:"allowed_server_ids"`
	Module             Module             `json:"module"`
	EventsHolder       EventsHolder       `json:"events_holder"`
	AccessRestrictions AccessRestrictions `json:"access_restrictions"`
}

// Module carries the detector settings. Rules is only sent for smart_va;
// the zone fields only for object_in_zone.
type Module struct {
	AdvancedSettings AdvancedSettings `json:"advanced_settings"`
	HardwareSettings HardwareSettings `json:"hardware_settings"`
	ExcludedCrossing *int             `json:"excluded_crossing,omitempty"`
	Mode             string           `json:"mode"`
	ZoneCrossing     *int             `json:"zone_crossing,omitempty"`
	Polygons         []Polygon        `json:"polygons,omitempty"`
	Rules            *[]any           `json:"rules,omitempty"`
}

type AdvancedSettings struct {
	Tracker           string `json:"tracker"`
	AlarmFiltration   *bool  `json:"alarm_filtration,omitempty"`
	Sensitivity       int    `json:"sensitivity"`
	Model             string `json:"model"`
	TrackerBufferTime int    `json:"tracker_buffer_time"`
	MinWidth          int    `json:"min_width"`
	MinHeight         int    `json:"min_height"`
}

type HardwareSettings struct {
	Acceleration      string            `json:"acceleration"`
	Decoding          string            `json:"decoding"`
	Hardware          string            `json:"hardware"`
	FrameRateSettings FrameRateSettings `json:"frame_rate_settings"`
	Motion            bool              `json:"motion"`
}

type FrameRateSettings struct {
	Mode string `json:"mode"`
	FPS  string `json:"fps"`
}

// Polygon is a detection zone. Coordinates are normalized to the frame and
// sent as strings.
type Polygon struct {
	Points      []Point      `json:"points"`
	Types       []string     `json:"types"`
	TimePeriods []TimePeriod `json:"time_periods"`
	Color       string       `json:"color"`
	Name        string       `json:"name"`
	Excluded    []any        `json:"excluded"`
}

type Point struct {
	X string `json:"x"`
	Y string `json:"y"`
}

type TimePeriod struct {
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	Trigger            int    `json:"trigger"`
	DwellTime          string `json:"dwell_time"`
	ObjectCounterLimit string `json:"object_counter_limit"`
	SelectedDays       []int  `json:"selected_days"`
}

// EventsHolder.NotifyEnabled is false for smart_va but 0 for object_in_zone,
// matching the templates the server's own UI sends.
type EventsHolder struct {
	NotifyEnabled any   `json:"notify_enabled"`
	Events        []any `json:"events"`
}

type AccessRestrictions struct {
	RolePermissions    map[string]any     `json:"role_permissions"`
	UserPermissions    map[string]any     `json:"user_permissions"`
	DefaultPermissions DefaultPermissions `json:"default_permissions"`
}

type DefaultPermissions struct {
	StartAnalytics      bool `json:"StartAnalytics"`
	StopAnalytics       bool `json:"StopAnalytics"`
	EditAnalytics       bool `json:"EditAnalytics"`
	ViewAnalyticsLive   bool `json:"ViewAnalyticsLive"`
	ViewAnalyticsEvents bool `json:"ViewAnalyticsEvents"`
}

func newSmartVA(streamID int) *Payload {
	rules := []any{}
	return &Payload{
		Type:     "smart_va",
		StreamID: streamID,
		Module: Module{
			AdvancedSettings: AdvancedSettings{
				Tracker:           "normal",
				Sensitivity:       5,
				Model:             "performance",
				TrackerBufferTime: 10,
				MinWidth:          25,
				MinHeight:         25,
			},
			HardwareSettings: gpuHardware("5"),
			Mode:             "alert",
			Rules:            &rules,
		},
		EventsHolder: EventsHolder{
			NotifyEnabled: false,
			Events:        []any{},
		},
		AccessRestrictions: openAccess(),
	}
}

func newObjectInZone(streamID int) *Payload {
	alarmFiltration := true
	crossing := 8
	return &Payload{
		Type:     "object_in_zone",
		StreamID: streamID,
		Module: Module{
			AdvancedSettings: AdvancedSettings{
				Tracker:           "normal",
				AlarmFiltration:   &alarmFiltration,
				Sensitivity:       5,
				Model:             "quality",
				TrackerBufferTime: 20,
				MinWidth:          25,
				MinHeight:         25,
			},
			HardwareSettings: gpuHardware("10"),
			ExcludedCrossing: &crossing,
			Mode:             "alert",
			ZoneCrossing:     &crossing,
			Polygons: []Polygon{{
				Points: []Point{
					{X: "0.0078", Y: "0.0139"},
					{X: "0.9922", Y: "0.0139"},
					{X: "0.9922", Y: "0.9861"},
					{X: "0.0078", Y: "0.9861"},
				},
				Types: []string{"0"},
				TimePeriods: []TimePeriod{{
					StartTime:          "00:00:00",
					EndTime:            "23:59:59",
					Trigger:            6,
					DwellTime:          "5",
					ObjectCounterLimit: "1",
					SelectedDays:       []int{0, 1, 2, 3, 4, 5, 6},
				}},
				Color:    "#A347FF",
				Name:     "Rule 1",
				Excluded: []any{},
			}},
		},
		EventsHolder: EventsHolder{
			NotifyEnabled: 0,
			Events:        []any{},
		},
		AccessRestrictions: openAccess(),
	}
}

func gpuHardware(fps string) HardwareSettings {
	return HardwareSettings{
		Acceleration:      "",
		Decoding:          "nvidia",
		Hardware:          "gpu",
		FrameRateSettings: FrameRateSettings{Mode: "fps", FPS: fps},
		Motion:            false,
	}
}

func openAccess() AccessRestrictions {
	return AccessRestrictions{
		RolePermissions: map[string]any{},
		UserPermissions: map[string]any{},
		DefaultPermissions: DefaultPermissions{
			StartAnalytics:      true,
			StopAnalytics:       true,
			EditAnalytics:       true,
			ViewAnalyticsLive:   true,
			ViewAnalyticsEvents: true,
		},
	}
}
