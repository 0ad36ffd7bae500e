package apris

import (
	"fmt"
	"slices"
)

// Source 是展开引擎读取数据的接口。
//
// 所有方法都必须是只读的；越界访问通过 bool 返回值报告，不得 panic。
type Source interface {
	BankCount() int
	Lookup(bank, index int) (string, bool)
	BankAlt(bank int) (int, bool)
	ControlMap(number int) (string, bool)
}

// Bank 一个字符串库：有序的模板字符串与默认备选序号。
type Bank struct {
	Alt     int      `json:"alt"`
	Strings []string `json:"strings"`
}

// Store 保存字符串库与控制映射，实现 [Source]。
//
// Store 不做任何加锁；与 Process 并发修改需要由调用方串行化。
type Store struct {
	banks      []Bank
	controlMap map[int]string
}

var _ Source = (*Store)(nil)

// NewStore 创建包含 n 个空字符串库的 Store。
func NewStore(n int) *Store {
	s := &Store{controlMap: make(map[int]string)}
	s.SetNumberOfBanks(n)

	return s
}

// SetNumberOfBanks 调整字符串库数量；扩容时新增空库，缩容时丢弃末尾的库。
func (s *Store) SetNumberOfBanks(n int) {
	n = max(n, 0)
	if n <= len(s.banks) {
		clear(s.banks[n:])
		s.banks = s.banks[:n]

		return
	}
	s.banks = append(s.banks, make([]Bank, n-len(s.banks))...)
}

// BankCount 返回字符串库数量。
func (s *Store) BankCount() int {
	return len(s.banks)
}

// IsBankIndexValid 判断字符串库索引是否存在。
func (s *Store) IsBankIndexValid(bank int) bool {
	return bank >= 0 && bank < len(s.banks)
}

func (s *Store) bank(bank int) (*Bank, error) {
	if !s.IsBankIndexValid(bank) {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrBankOutOfRange, bank, len(s.banks))
	}

	return &s.banks[bank], nil
}

// AddString 在字符串库末尾追加一个字符串。
func (s *Store) AddString(bank int, str string) error {
	return s.AddStrings(bank, str)
}

// AddStrings 在字符串库末尾依次追加多个字符串。
func (s *Store) AddStrings(bank int, strs ...string) error {
	b, err := s.bank(bank)
	if err != nil {
		return err
	}
	b.Strings = append(b.Strings, strs...)

	return nil
}

// SetString 覆盖已存在的字符串。
func (s *Store) SetString(bank, index int, str string) error {
	b, err := s.bank(bank)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(b.Strings) {
		return fmt.Errorf("%w: bank %d index %d (have %d)", ErrStringOutOfRange, bank, index, len(b.Strings))
	}
	b.Strings[index] = str

	return nil
}

// ResetBank 清空字符串库的字符串并将备选恢复为 0。
func (s *Store) ResetBank(bank int) error {
	b, err := s.bank(bank)
	if err != nil {
		return err
	}
	*b = Bank{}

	return nil
}

// ResetAllBanks 清空所有字符串库，保留库数量。
func (s *Store) ResetAllBanks() {
	clear(s.banks)
}

// NumberOfStrings 返回字符串库中的字符串数量。
func (s *Store) NumberOfStrings(bank int) (int, error) {
	b, err := s.bank(bank)
	if err != nil {
		return 0, err
	}

	return len(b.Strings), nil
}

// GetString 返回原始（未展开）字符串。
func (s *Store) GetString(bank, index int) (string, error) {
	b, err := s.bank(bank)
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(b.Strings) {
		return "", fmt.Errorf("%w: bank %d index %d (have %d)", ErrStringOutOfRange, bank, index, len(b.Strings))
	}

	return b.Strings[index], nil
}

// Lookup 实现 [Source]。
func (s *Store) Lookup(bank, index int) (string, bool) {
	str, err := s.GetString(bank, index)

	return str, err == nil
}

// Bank 返回字符串库的副本。
func (s *Store) Bank(bank int) (Bank, error) {
	b, err := s.bank(bank)
	if err != nil {
		return Bank{}, err
	}

	return Bank{Alt: b.Alt, Strings: slices.Clone(b.Strings)}, nil
}

// SetBankAlt 设置字符串库的默认备选序号。
func (s *Store) SetBankAlt(bank, alt int) error {
	if alt < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAlt, alt)
	}
	b, err := s.bank(bank)
	if err != nil {
		return err
	}
	b.Alt = alt

	return nil
}

// BankAlt 实现 [Source]。
func (s *Store) BankAlt(bank int) (int, bool) {
	if !s.IsBankIndexValid(bank) {
		return 0, false
	}

	return s.banks[bank].Alt, true
}

// ═══════════════════════════════════════════════════════════════════════════
// 控制映射
// ═══════════════════════════════════════════════════════════════════════════

// SetControlMap 设置控制数字对应的字面替换字符串。
//
// 查找时使用控制数字的绝对值，因此 number 同样取绝对值保存。
func (s *Store) SetControlMap(number int, str string) {
	if s.controlMap == nil {
		s.controlMap = make(map[int]string)
	}
	s.controlMap[abs(number)] = str
}

// RemoveControlMap 删除一个控制映射，不存在时无操作。
func (s *Store) RemoveControlMap(number int) {
	delete(s.controlMap, abs(number))
}

// ClearControlMap 删除全部控制映射。
func (s *Store) ClearControlMap() {
	clear(s.controlMap)
}

// ControlMapExists 判断控制映射是否存在。
func (s *Store) ControlMapExists(number int) bool {
	_, ok := s.controlMap[abs(number)]

	return ok
}

// ControlMap 实现 [Source]。
func (s *Store) ControlMap(number int) (string, bool) {
	str, ok := s.controlMap[abs(number)]

	return str, ok
}

// ControlNumbers 按升序返回所有已映射的控制数字。
func (s *Store) ControlNumbers() []int {
	numbers := make([]int, 0, len(s.controlMap))
	for n := range s.controlMap {
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)

	return numbers
}
