package clerkhook

import (
	"encoding/json"
	"fmt"
)

// EventUserCreated Clerk 用户创建事件
const EventUserCreated = "user.created"

// Event Clerk Webhook 事件结构（签名验证通过后才会构造）
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// UserData Clerk 用户数据结构
// first_name / last_name 在 Clerk 中可能为 null
type UserData struct {
	ID             string         `json:"id"`
	FirstName      *string        `json:"first_name"`
	LastName       *string        `json:"last_name"`
	EmailAddresses []EmailAddress `json:"email_addresses"`
	PhoneNumbers   []PhoneNumber  `json:"phone_numbers"`
}

type EmailAddress struct {
	EmailAddress string `json:"email_address"`
}

type PhoneNumber struct {
	PhoneNumber string `json:"phone_number"`
}

// UserData 将 data 解析为 Clerk 用户数据
func (e *Event) UserData() (*UserData, error) {
	var data UserData
	if err := json.Unmarshal(e.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return &data, nil
}

// PrimaryEmail 取第一个邮箱，没有则返回空字符串
func (u *UserData) PrimaryEmail() string {
	if len(u.EmailAddresses) == 0 {
		return ""
	}
	return u.EmailAddresses[0].EmailAddress
}

// PrimaryPhone 取第一个手机号，没有则返回空字符串
func (u *UserData) PrimaryPhone() string {
	if len(u.PhoneNumbers) == 0 {
		return ""
	}
	return u.PhoneNumbers[0].PhoneNumber
}
