package funnel

type createFunnelRequest struct {
	Name  string `json:"name" validate:"required"`
	Slug  string `json:"slug" validate:"required"`
	Pages []Page `json:"pages"`
}

type updateFunnelRequest struct {
	Name  *string `json:"name"`
	Slug  *string `json:"slug"`
	Pages []Page  `json:"pages"`
}
