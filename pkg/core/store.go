package core

import (
	"cmp"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Store 实体池
//
// 所有查询都反映调用时刻的状态。返回结果按 ID 升序排列，这样同一个随机种子
// 下敌人的随机方向和事件顺序可以复现；调用方不应依赖其它顺序语义。
// Store 只由模拟循环持有，不做并发保护。
type Store struct {
	nextID   EntityID
	entities map[EntityID]*Entity
	byKind   map[Kind]mapset.Set[EntityID]
}

// NewStore 创建空实体池
func NewStore() *Store {
	return &Store{
		nextID:   1,
		entities: make(map[EntityID]*Entity),
		byKind:   make(map[Kind]mapset.Set[EntityID]),
	}
}

// Insert 分配 ID 并加入实体池
func (s *Store) Insert(e *Entity) EntityID {
	e.ID = s.nextID
	s.nextID++
	s.entities[e.ID] = e

	set, ok := s.byKind[e.Kind]
	if !ok {
		set = mapset.New[EntityID]()
		s.byKind[e.Kind] = set
	}
	set.Put(e.ID)
	return e.ID
}

// Remove 移除实体；重复移除是无操作，返回 false
func (s *Store) Remove(id EntityID) bool {
	e, ok := s.entities[id]
	if !ok {
		return false
	}
	delete(s.entities, id)
	if set, ok := s.byKind[e.Kind]; ok {
		set.Remove(id)
	}
	return true
}

// Get 根据 ID 获取实体
func (s *Store) Get(id EntityID) (*Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

// OfKind 返回指定类型的全部实体
func (s *Store) OfKind(kind Kind) []*Entity {
	set, ok := s.byKind[kind]
	if !ok || set.Size() == 0 {
		return nil
	}
	ids := make([]EntityID, 0, set.Size())
	set.Each(func(id EntityID) {
		ids = append(ids, id)
	})
	slices.Sort(ids)

	result := make([]*Entity, 0, len(ids))
	for _, id := range ids {
		result = append(result, s.entities[id])
	}
	return result
}

// Count 返回指定类型的实体数量
func (s *Store) Count(kind Kind) int {
	set, ok := s.byKind[kind]
	if !ok {
		return 0
	}
	return set.Size()
}

// At 返回位于格子 p 且类型属于 kinds 的全部实体
func (s *Store) At(p GridPos, kinds ...Kind) []*Entity {
	var result []*Entity
	for _, kind := range kinds {
		for _, e := range s.OfKind(kind) {
			if e.Pos == p {
				result = append(result, e)
			}
		}
	}
	slices.SortFunc(result, func(a, b *Entity) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Any 检查格子 p 上是否存在 kinds 中任意类型的实体
func (s *Store) Any(p GridPos, kinds ...Kind) bool {
	for _, kind := range kinds {
		set, ok := s.byKind[kind]
		if !ok {
			continue
		}
		found := false
		set.Each(func(id EntityID) {
			if !found && s.entities[id].Pos == p {
				found = true
			}
		})
		if found {
			return true
		}
	}
	return false
}

// Query 返回满足谓词的全部实体
func (s *Store) Query(match func(*Entity) bool) []*Entity {
	ids := make([]EntityID, 0, len(s.entities))
	for id, e := range s.entities {
		if match(e) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	result := make([]*Entity, 0, len(ids))
	for _, id := range ids {
		result = append(result, s.entities[id])
	}
	return result
}

// Len 返回实体总数
func (s *Store) Len() int {
	return len(s.entities)
}

// Clear 清空实体池（ID 计数不回退）
func (s *Store) Clear() {
	s.entities = make(map[EntityID]*Entity)
	s.byKind = make(map[Kind]mapset.Set[EntityID])
}
