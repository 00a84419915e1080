package data

import (
	"github.com/go-kratos/kratos/v2/log"
)

// NewData 创建加载了初始数据的存储
func NewData(logger log.Logger) (*Store, func(), error) {
	store := NewStore(DefaultSeed())
	helper := log.NewHelper(logger)
	helper.Infof("record store seeded: %d knowledge items, %d updates",
		len(store.knowledgeBase), len(store.updates))

	cleanup := func() {
		helper.Info("closing the data resources")
	}
	return store, cleanup, nil
}
