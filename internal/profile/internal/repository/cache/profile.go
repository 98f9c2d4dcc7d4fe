// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobportal/internal/profile/internal/domain"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

var ErrKeyNotExist = redis.Nil

type ProfileCache interface {
	Delete(ctx context.Context, uid int64) error
	Get(ctx context.Context, uid int64) (domain.Profile, error)
	Set(ctx context.Context, p domain.Profile) error
}

type ProfileECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewProfileECache(c ecache.Cache) ProfileCache {
	return &ProfileECache{
		cache: &ecache.NamespaceCache{
			Namespace: "profile:",
			C:         c,
		},
		expiration: time.Minute * 15,
	}
}

func (c *ProfileECache) Delete(ctx context.Context, uid int64) error {
	_, err := c.cache.Delete(ctx, c.key(uid))
	return err
}

func (c *ProfileECache) Get(ctx context.Context, uid int64) (domain.Profile, error) {
	var p domain.Profile
	val := c.cache.Get(ctx, c.key(uid))
	if val.Err != nil {
		return p, val.Err
	}
	err := val.JSONScan(&p)
	return p, errors.Wrap(err, "反序列化个人资料失败")
}

func (c *ProfileECache) Set(ctx context.Context, p domain.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "序列化个人资料失败")
	}
	return c.cache.Set(ctx, c.key(p.Uid), data, c.expiration)
}

func (c *ProfileECache) key(uid int64) string {
	return fmt.Sprintf("info:%d", uid)
}
