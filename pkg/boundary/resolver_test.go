package boundary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIDFromFilename(t *testing.T) {
	t.Run("dotted village id keeps all segments", func(t *testing.T) {
		assert.Equal(t, "32.12.02.2007", IDFromFilename("./data/villages/32.12.02.2007.geojson"))
	})

	t.Run("province id", func(t *testing.T) {
		assert.Equal(t, "32", IDFromFilename("data/provinces/32.geojson"))
	})

	t.Run("bare filename without directory", func(t *testing.T) {
		assert.Equal(t, "31.71", IDFromFilename("31.71.geojson"))
	})
}

func TestParentID(t *testing.T) {
	t.Run("village parent is its district", func(t *testing.T) {
		parent := ParentID("32.12.02.2007")
		require.NotNil(t, parent)
		assert.Equal(t, "32.12.02", *parent)
	})

	t.Run("regency parent is its province", func(t *testing.T) {
		parent := ParentID("32.12")
		require.NotNil(t, parent)
		assert.Equal(t, "32", *parent)
	})

	t.Run("id without dot has no parent", func(t *testing.T) {
		assert.Nil(t, ParentID("32"))
	})
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Jawa Barat", NormalizeName("JAWA BARAT"))
	assert.Equal(t, "Kota Bandung", NormalizeName("kota bandung"))
	assert.Equal(t, "Daerah Istimewa Yogyakarta", NormalizeName("daerah istimewa YOGYAKARTA"))
	assert.Equal(t, "", NormalizeName(""))
}

func TestResolve(t *testing.T) {
	log := zap.NewNop()

	t.Run("filename id wins over code property", func(t *testing.T) {
		id, name, parentID := Resolve(log, District, "data/districts/32.12.02.geojson",
			map[string]interface{}{"name": "CIKAJANG", "code": "99.99.99"})
		assert.Equal(t, "32.12.02", id)
		assert.Equal(t, "Cikajang", name)
		require.NotNil(t, parentID)
		assert.Equal(t, "32.12", *parentID)
	})

	t.Run("falls back to code property when filename yields nothing", func(t *testing.T) {
		id, _, _ := Resolve(log, Province, "data/provinces/.geojson",
			map[string]interface{}{"code": "31"})
		assert.Equal(t, "31", id)
	})

	t.Run("province never gets a parent", func(t *testing.T) {
		_, _, parentID := Resolve(log, Province, "data/provinces/32.geojson",
			map[string]interface{}{"name": "JAWA BARAT"})
		assert.Nil(t, parentID)
	})

	t.Run("village id without dot is detached, not rejected", func(t *testing.T) {
		id, _, parentID := Resolve(log, Village, "data/villages/9999.geojson", nil)
		assert.Equal(t, "9999", id)
		assert.Nil(t, parentID)
	})

	t.Run("missing name stays empty", func(t *testing.T) {
		_, name, _ := Resolve(log, Province, "data/provinces/32.geojson", map[string]interface{}{})
		assert.Equal(t, "", name)
	})
}

func TestLevels(t *testing.T) {
	t.Run("processing order is parents first", func(t *testing.T) {
		assert.Equal(t, []Level{Province, Regency, District, Village}, Levels())
	})

	t.Run("table names", func(t *testing.T) {
		assert.Equal(t, "provinces", Province.TableName())
		assert.Equal(t, "regencies", Regency.TableName())
		assert.Equal(t, "districts", District.TableName())
		assert.Equal(t, "villages", Village.TableName())
	})

	t.Run("only the root has no parent", func(t *testing.T) {
		assert.False(t, Province.HasParent())
		assert.True(t, Regency.HasParent())
		assert.True(t, District.HasParent())
		assert.True(t, Village.HasParent())
		assert.Equal(t, District, Village.Parent())
	})

	t.Run("id segment depth per level", func(t *testing.T) {
		assert.Equal(t, 1, Province.Depth())
		assert.Equal(t, 4, Village.Depth())
	})
}
