package handler

import (
	"encoding/json"
	"net/http"
	"reflect"
	"sort"
	"strconv"
	"sync"

	"bizops-dashboard/internal/repository"
	"bizops-dashboard/internal/service"
	"bizops-dashboard/internal/validation"

	"github.com/gin-gonic/gin"
)

// QueryFilter exposes an equality filter on Column as the ?Param= query parameter.
type QueryFilter struct {
	Param   string
	Column  string
	Numeric bool
}

// By declares a string valued query filter.
func By(param, column string) QueryFilter {
	return QueryFilter{Param: param, Column: column}
}

// ByNumber declares a query filter on an integer column such as a foreign key.
func ByNumber(param, column string) QueryFilter {
	return QueryFilter{Param: param, Column: column, Numeric: true}
}

// ResourceHandler serves list/get/create/update/delete for one entity table.
type ResourceHandler[T any] struct {
	svc     *service.CRUDService[T]
	label   string
	filters []QueryFilter
}

// NewResourceHandler creates a handler; label names the entity in 404 messages.
func NewResourceHandler[T any](svc *service.CRUDService[T], label string, filters ...QueryFilter) *ResourceHandler[T] {
	return &ResourceHandler[T]{svc: svc, label: label, filters: filters}
}

// Register mounts the routes under /<resource>. write guards the mutating routes.
func (h *ResourceHandler[T]) Register(g *gin.RouterGroup, write ...gin.HandlerFunc) {
	base := "/" + h.svc.Resource()
	g.GET(base, h.List)
	g.GET(base+"/:id", h.Get)
	g.POST(base, chain(write, h.Create)...)
	g.PUT(base+"/:id", chain(write, h.Update)...)
	g.PATCH(base+"/:id", chain(write, h.Update)...)
	g.DELETE(base+"/:id", chain(write, h.Delete)...)
}

func chain(middleware []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(middleware)+1)
	out = append(out, middleware...)
	return append(out, h)
}

func (h *ResourceHandler[T]) List(c *gin.Context) {
	f := repository.Filter{Brand: c.Query("brand")}
	for _, qf := range h.filters {
		raw, ok := c.GetQuery(qf.Param)
		if !ok || raw == "" {
			continue
		}
		value, ok := filterValue(c, qf, raw)
		if !ok {
			return
		}
		if f.Where == nil {
			f.Where = map[string]any{}
		}
		f.Where[qf.Column] = value
	}
	h.list(c, f)
}

// ListChildren serves GET /<parent>/:id/<children>, matching column against :id.
func (h *ResourceHandler[T]) ListChildren(column string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		h.list(c, repository.Filter{Brand: c.Query("brand"), Where: map[string]any{column: id}})
	}
}

func (h *ResourceHandler[T]) list(c *gin.Context, f repository.Filter) {
	rows, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err, h.label)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func filterValue(c *gin.Context, qf QueryFilter, raw string) (any, bool) {
	if !qf.Numeric {
		return raw, true
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + qf.Param})
		return nil, false
	}
	return n, true
}

func (h *ResourceHandler[T]) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	row, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, h.label)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *ResourceHandler[T]) Create(c *gin.Context) {
	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		badRequest(c, err)
		return
	}
	resetBase(&entity)
	if err := h.svc.Create(c.Request.Context(), &entity); err != nil {
		respondError(c, err, h.label)
		return
	}
	c.JSON(http.StatusCreated, &entity)
}

// Update applies a partial body: only keys present in the JSON object are
// validated and written.
func (h *ResourceHandler[T]) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	raw, err := c.GetRawData()
	if err != nil {
		badRequest(c, err)
		return
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		badRequest(c, err)
		return
	}
	var patch T
	if err := json.Unmarshal(raw, &patch); err != nil {
		badRequest(c, err)
		return
	}
	fields := patchFields[T](keys)
	if err := validation.Partial(&patch, fields...); err != nil {
		badRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	var row *T
	if len(fields) == 0 {
		row, err = h.svc.Get(ctx, id)
	} else {
		row, err = h.svc.Update(ctx, id, &patch, fields)
	}
	if err != nil {
		respondError(c, err, h.label)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, h.label)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": h.label + " not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// resetBase clears the id and timestamps a client may have sent.
func resetBase(entity any) {
	v := reflect.ValueOf(entity).Elem()
	if f := v.FieldByName("Base"); f.IsValid() && f.CanSet() {
		f.Set(reflect.Zero(f.Type()))
	}
}

var jsonFieldCache sync.Map // reflect.Type -> map[string]string

// patchFields maps the JSON keys of a body onto writable Go field names of T.
// Unknown keys and the id and timestamp columns are dropped.
func patchFields[T any](keys map[string]json.RawMessage) []string {
	byJSON := jsonFields(reflect.TypeOf((*T)(nil)).Elem())
	fields := make([]string, 0, len(keys))
	for key := range keys {
		if name, ok := byJSON[key]; ok {
			fields = append(fields, name)
		}
	}
	sort.Strings(fields)
	return fields
}

func jsonFields(t reflect.Type) map[string]string {
	if cached, ok := jsonFieldCache.Load(t); ok {
		return cached.(map[string]string)
	}
	out := map[string]string{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		// Embedded Base carries id/createdAt/updatedAt, which are never patched.
		if f.Anonymous || !f.IsExported() {
			continue
		}
		if name := validation.JSONName(f); name != "" {
			out[name] = f.Name
		}
	}
	jsonFieldCache.Store(t, out)
	return out
}
