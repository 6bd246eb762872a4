package entity

// GenerationResult 单个合成单元的输出
type GenerationResult struct {
	SourceIndex int    `json:"sourceIndex"`
	ArtistKey   string `json:"artistKey"`
	StyleKey    string `json:"styleKey"`
	DataURL     string `json:"dataUrl"`
	PublicURL   string `json:"publicUrl,omitempty"`
}

// GenerationResponse 生成接口响应
type GenerationResponse struct {
	Results []GenerationResult `json:"results"`
}
