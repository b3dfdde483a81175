package layers

import "testing"

// TestCreateCenteredLayerWithContent tests layer creation with content
func TestCreateCenteredLayerWithContent(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		screenWidth  int
		screenHeight int
	}{
		{
			name:         "normal screen",
			content:      "Test Content",
			screenWidth:  120,
			screenHeight: 40,
		},
		{
			name:         "small content on large screen",
			content:      "X",
			screenWidth:  200,
			screenHeight: 100,
		},
		{
			name:         "content wider than screen",
			content:      "This is a very long piece of content that needs to be centered on the screen",
			screenWidth:  20,
			screenHeight: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layer := CreateCenteredLayer(tt.content, tt.screenWidth, tt.screenHeight)
			if layer == nil {
				t.Fatal("CreateCenteredLayer should return a layer for non-empty content")
			}
		})
	}
}

// TestCreateCenteredLayerWithEmptyContent tests layer creation with empty content
func TestCreateCenteredLayerWithEmptyContent(t *testing.T) {
	if layer := CreateCenteredLayer("", 120, 40); layer != nil {
		t.Error("CreateCenteredLayer should return nil for empty content")
	}
	if layer := CreateRightLayer("", 120, 0); layer != nil {
		t.Error("CreateRightLayer should return nil for empty content")
	}
}

func TestDialogWidth(t *testing.T) {
	tests := []struct {
		name   string
		screen int
		want   int
	}{
		{"wide screen capped at max", 200, 70},
		{"medium screen uses half", 120, 60},
		{"narrow screen uses min", 60, 40},
		{"tiny screen never exceeds screen", 30, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DialogWidth(tt.screen, 40, 70); got != tt.want {
				t.Errorf("DialogWidth(%d, 40, 70) = %d, want %d", tt.screen, got, tt.want)
			}
		})
	}
}
