package dto

// Reply исходящий ответ бота
type Reply struct {
	Text         string   `json:"text"`
	QuickReplies []string `json:"quick_replies,omitempty"`
}

// InboundEvent входящее сообщение от платформы
type InboundEvent struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

// CallbackRequest тело запроса вебхука
type CallbackRequest struct {
	Events []InboundEvent `json:"events"`
}

// OutboundReply ответ на одно событие вебхука
type OutboundReply struct {
	UserID string `json:"user_id"`
	Reply
}

// CallbackResponse ответ вебхука
type CallbackResponse struct {
	Status  string          `json:"status"`
	Replies []OutboundReply `json:"replies"`
}
