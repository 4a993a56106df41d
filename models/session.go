package models

import (
	"sort"
	"strconv"
	"time"
)

// Cart 商品ID（10進文字列）→ 数量
type Cart map[string]int

func (c Cart) Add(productID uint) {
	c[strconv.FormatUint(uint64(productID), 10)]++
}

// ProductIDs 商品IDを昇順で返す。IDとして不正なキーは2番目の戻り値で返す
func (c Cart) ProductIDs() ([]uint, []string) {
	ids := make([]uint, 0, len(c))
	var invalid []string
	for key := range c {
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil || id == 0 {
			invalid = append(invalid, key)
			continue
		}
		ids = append(ids, uint(id))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, invalid
}

func (c Cart) Quantity(productID uint) int {
	return c[strconv.FormatUint(uint64(productID), 10)]
}

// Session 署名付きCookieに対応するサーバー側のセッション状態
type Session struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    *uint     `gorm:"index"`
	IsAdmin   bool      `gorm:"not null;default:false"`
	Username  string    `gorm:"size:80"`
	Cart      Cart      `gorm:"serializer:json;type:text"`
	ExpiresAt int64     `gorm:"not null;index"`
	UpdatedAt time.Time
}

func (s *Session) IsAuthenticated() bool {
	return s.UserID != nil
}

// SetIdentity IsAdminは参照用のみ。管理者判定は常にusersテーブルを再取得する
func (s *Session) SetIdentity(user User) {
	id := user.ID
	s.UserID = &id
	s.IsAdmin = user.IsAdmin
	s.Username = user.Username
}

func (s *Session) Clear() {
	s.UserID = nil
	s.IsAdmin = false
	s.Username = ""
	s.Cart = nil
}
