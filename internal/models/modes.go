package models

// ModelMode pairs a vision model with the text model used for summaries,
// plus the descriptive metadata surfaced on the status endpoint.
type ModelMode struct {
	Key           string `json:"key"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	DescriptionTH string `json:"description_th"`
	VisionModel   string `json:"vision_model"`
	TextModel     string `json:"text_model"`
	Icon          string `json:"icon"`
	MinRAMGB      int    `json:"min_ram_gb"`
}

const DefaultModelMode = "moondream"

var modelModes = map[string]ModelMode{
	"moondream": {
		Key:           "moondream",
		Name:          "Moondream",
		Description:   "Moondream 1.8B — Lightweight vision model, low RAM (~2 GB)",
		DescriptionTH: "Moondream 1.8B — โมเดลวิทัศน์ขนาดเล็ก ใช้ RAM น้อย (~2 GB)",
		VisionModel:   "moondream",
		TextModel:     "llama3.2:1b",
		Icon:          "🌙",
		MinRAMGB:      3,
	},
	"llava": {
		Key:           "llava",
		Name:          "LLaVA",
		Description:   "LLaVA 7B — Better accuracy, requires more RAM (~8 GB)",
		DescriptionTH: "LLaVA 7B — แม่นยำกว่า ต้องใช้ RAM มากกว่า (~8 GB)",
		VisionModel:   "llava:7b",
		TextModel:     "llama3.2:3b",
		Icon:          "🦙",
		MinRAMGB:      8,
	},
}

// ResolveMode looks up a mode by key, falling back to the default
// for unrecognized keys.
func ResolveMode(key string) ModelMode {
	if mode, ok := modelModes[key]; ok {
		return mode
	}
	return modelModes[DefaultModelMode]
}

// Modes returns the full mode table keyed by mode name.
func Modes() map[string]ModelMode {
	out := make(map[string]ModelMode, len(modelModes))
	for k, v := range modelModes {
		out[k] = v
	}
	return out
}
