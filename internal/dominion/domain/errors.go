package domain

import "Dominion/internal/kit/errx"

// 领域哨兵错误：repo 层把 gorm 的技术错误翻译成这些语义后再向上抛。
var (
	ErrUnknownItemType   = errx.NewBiz("UNKNOWN_ITEM_TYPE", "未知的队列类型")
	ErrUnknownQueueKind  = errx.NewBiz("UNKNOWN_QUEUE_KIND", "未知的队列种类")
	ErrSystemUnavailable = errx.ErrUnavailable
)
