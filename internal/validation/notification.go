// Package validation 提供校验错误的累积能力（Notification 模式）。
// 所有独立校验将错误追加到同一个 Notification，最终由调用方决定是否失败，
// 保证一次请求能同时暴露全部问题而非仅第一个。
package validation

// Error 表示一条校验错误。
type Error struct {
	Message string `json:"message"`
}

// NewError 构造校验错误。
func NewError(message string) Error {
	return Error{Message: message}
}

func (e Error) Error() string {
	return e.Message
}

// Validator 表示一个可向 Notification 追加错误的校验单元。
type Validator interface {
	Validate(n *Notification)
}

// Notification 按追加顺序收集校验错误，自身从不中断流程。
type Notification struct {
	errors []Error
}

// NewNotification 构造空的 Notification。
func NewNotification() *Notification {
	return &Notification{}
}

// Append 追加一条错误。
func (n *Notification) Append(err Error) *Notification {
	n.errors = append(n.errors, err)
	return n
}

// AppendAll 合并另一个 Notification 的全部错误，保持原始顺序。
func (n *Notification) AppendAll(other *Notification) *Notification {
	if other == nil {
		return n
	}
	n.errors = append(n.errors, other.errors...)
	return n
}

// Validate 执行校验单元，由其自行追加零条或多条错误。
func (n *Notification) Validate(v Validator) *Notification {
	if v != nil {
		v.Validate(n)
	}
	return n
}

// HasError 报告是否存在已记录的错误。
func (n *Notification) HasError() bool {
	return len(n.errors) > 0
}

// FirstError 返回首条错误；不存在时返回 false。
func (n *Notification) FirstError() (Error, bool) {
	if len(n.errors) == 0 {
		return Error{}, false
	}
	return n.errors[0], true
}

// Errors 返回错误列表的副本。
func (n *Notification) Errors() []Error {
	if len(n.errors) == 0 {
		return nil
	}
	out := make([]Error, len(n.errors))
	copy(out, n.errors)
	return out
}

// Messages 返回全部错误消息，顺序与追加顺序一致。
func (n *Notification) Messages() []string {
	if len(n.errors) == 0 {
		return nil
	}
	out := make([]string, len(n.errors))
	for i, err := range n.errors {
		out[i] = err.Message
	}
	return out
}
