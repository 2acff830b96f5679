package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"fooding/internal/fdc"
	"fooding/internal/models/db_models"
	"fooding/internal/repositories"
	"fooding/pkg/utils"
)

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*db_models.Account
	pantries map[string]bool
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*db_models.Account{}, pantries: map[string]bool{}}
}

func (f *fakeAccountRepo) CreateWithPantry(_ context.Context, account *db_models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.accounts[account.Email]; ok {
		return repositories.ErrDuplicateKey
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	cp := *account
	f.accounts[account.Email] = &cp
	f.pantries[account.Email] = true
	return nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[email]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccountRepo) UpdateProfile(_ context.Context, email string, updates map[string]any) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[email]
	if !ok {
		return nil, nil
	}
	for k, v := range updates {
		switch k {
		case "username":
			a.Username = v.(string)
		case "weight":
			w := v.(float64)
			a.Weight = &w
		case "height":
			h := v.(float64)
			a.Height = &h
		case "age":
			n := v.(int)
			a.Age = &n
		case "birthday":
			a.Birthday = v.(string)
		case "gender":
			a.Gender = v.(string)
		}
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccountRepo) ListAll(context.Context) ([]db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]db_models.Account, 0, len(f.accounts))
	for _, a := range f.accounts {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAccountRepo) DeleteWithoutEmail(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.accounts[""]; ok {
		delete(f.accounts, "")
		return 1, nil
	}
	return 0, nil
}

type fakePantryRepo struct {
	mu       sync.Mutex
	pantries map[string]*db_models.Pantry
	items    []*db_models.PantryItem
	err      error
}

func newFakePantryRepo() *fakePantryRepo {
	return &fakePantryRepo{pantries: map[string]*db_models.Pantry{}}
}

func (f *fakePantryRepo) EnsurePantry(_ context.Context, email string) (*db_models.Pantry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.pantries[email]
	if !ok {
		p = &db_models.Pantry{OwnerEmail: email}
		p.ID = uuid.New()
		f.pantries[email] = p
	}
	cp := *p
	return &cp, nil
}

func (f *fakePantryRepo) FindPantry(_ context.Context, email string) (*db_models.Pantry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pantries[email]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePantryRepo) AddItem(_ context.Context, item *db_models.PantryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	cp := *item
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakePantryRepo) ListItems(_ context.Context, email string) ([]db_models.PantryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.PantryItem
	for _, it := range f.items {
		if it.OwnerEmail == email {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (f *fakePantryRepo) find(email string, id uuid.UUID) *db_models.PantryItem {
	for _, it := range f.items {
		if it.ID == id && it.OwnerEmail == email {
			return it
		}
	}
	return nil
}

func (f *fakePantryRepo) GetItem(_ context.Context, email string, id uuid.UUID) (*db_models.PantryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it := f.find(email, id)
	if it == nil {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (f *fakePantryRepo) AdjustQuantity(_ context.Context, email string, id uuid.UUID, delta int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it := f.find(email, id)
	if it == nil || it.Quantity+delta < 1 {
		return false, nil
	}
	it.Quantity += delta
	return true, nil
}

func (f *fakePantryRepo) SetQuantity(_ context.Context, email string, id uuid.UUID, quantity int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it := f.find(email, id)
	if it == nil {
		return false, nil
	}
	it.Quantity = quantity
	return true, nil
}

func (f *fakePantryRepo) RemoveItem(_ context.Context, email string, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, it := range f.items {
		if it.ID == id && it.OwnerEmail == email {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePantryRepo) CountItemsByOwner(context.Context) (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]int64{}
	for _, it := range f.items {
		out[it.OwnerEmail]++
	}
	return out, nil
}

type fakeCustomRepo struct {
	mu    sync.Mutex
	foods []*db_models.CustomFood
	err   error
}

func (f *fakeCustomRepo) Create(_ context.Context, food *db_models.CustomFood) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if food.ID == uuid.Nil {
		food.ID = uuid.New()
	}
	cp := *food
	f.foods = append(f.foods, &cp)
	return nil
}

func (f *fakeCustomRepo) ListByOwner(_ context.Context, email string) ([]db_models.CustomFood, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.CustomFood
	for _, cf := range f.foods {
		if cf.OwnerEmail == email {
			out = append(out, *cf)
		}
	}
	return out, nil
}

func (f *fakeCustomRepo) SearchByDescription(_ context.Context, email, query string) ([]db_models.CustomFood, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.CustomFood
	for _, cf := range f.foods {
		if cf.OwnerEmail == email && strings.Contains(strings.ToLower(cf.Description), strings.ToLower(query)) {
			out = append(out, *cf)
		}
	}
	return out, nil
}

func (f *fakeCustomRepo) Get(_ context.Context, email string, id uuid.UUID) (*db_models.CustomFood, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, cf := range f.foods {
		if cf.ID == id && cf.OwnerEmail == email {
			cp := *cf
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomRepo) UpdateIngredients(_ context.Context, email string, id uuid.UUID, ingredients []string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, cf := range f.foods {
		if cf.ID == id && cf.OwnerEmail == email {
			cf.Ingredients = pq.StringArray(ingredients)
			return true, nil
		}
	}
	return false, nil
}

type fakeFoodRecords struct {
	mu      sync.Mutex
	records map[int64]db_models.FoodRecord
	findErr error
	puts    int
}

func newFakeFoodRecords() *fakeFoodRecords {
	return &fakeFoodRecords{records: map[int64]db_models.FoodRecord{}}
}

func (f *fakeFoodRecords) FindByFdcID(_ context.Context, id int64) (*db_models.FoodRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	r, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (f *fakeFoodRecords) Upsert(_ context.Context, r *db_models.FoodRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[r.FdcID] = *r
	f.puts++
	return nil
}

// fakeSearcher answers per category from canned results.
type fakeSearcher struct {
	mu      sync.Mutex
	results map[fdc.Category]*fdc.Result
	errs    map[fdc.Category]error
	calls   []fdc.SearchParams
	details map[int64][]byte
	detailN int
}

func (f *fakeSearcher) Search(_ context.Context, params fdc.SearchParams) (*fdc.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, params)
	f.mu.Unlock()
	if err := f.errs[params.Category]; err != nil {
		return nil, err
	}
	res := fdc.NewResult()
	if canned, ok := f.results[params.Category]; ok {
		res.Merge(canned)
	}
	return res, nil
}

func (f *fakeSearcher) FoodDetail(_ context.Context, id int64) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailN++
	body, ok := f.details[id]
	if !ok {
		return nil, fdc.ErrFoodNotFound
	}
	return body, nil
}

func (f *fakeSearcher) categories() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, string(c.Category))
	}
	sort.Strings(out)
	return out
}

type fakeExchanger struct {
	profile *OAuthProfile
	err     error
}

func (f fakeExchanger) Exchange(context.Context, string) (*OAuthProfile, error) {
	return f.profile, f.err
}

type fakeGenerator struct {
	got  utils.CompletionRequest
	text string
	err  error
}

func (f *fakeGenerator) Provider() string     { return "fake" }
func (f *fakeGenerator) DefaultModel() string { return "fake-model" }

func (f *fakeGenerator) Generate(_ context.Context, req utils.CompletionRequest) (string, error) {
	f.got = req
	return f.text, f.err
}

var errBoom = errors.New("boom")
