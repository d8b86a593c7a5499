// Copyright 2025 Valve Corporation
// Copyright 2025 LunarG, Inc.
// SPDX-License-Identifier: Apache-2.0

package vkxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coreOnlyXML = `<?xml version="1.0" encoding="UTF-8"?>
<registry>
    <enums name="VkDynamicState" type="enum">
        <enum value="0" name="VK_DYNAMIC_STATE_VIEWPORT"/>
        <enum value="1" name="VK_DYNAMIC_STATE_SCISSOR"/>
        <enum value="2" name="VK_DYNAMIC_STATE_LINE_WIDTH"/>
    </enums>
    <enums name="VkPolygonMode" type="enum">
        <enum value="0" name="VK_POLYGON_MODE_FILL"/>
    </enums>
</registry>`

const mergedXML = `<?xml version="1.0" encoding="UTF-8"?>
<registry>
    <enums name="VkDynamicState" type="enum">
        <enum value="0" name="VK_DYNAMIC_STATE_VIEWPORT"/>
        <enum value="1" name="VK_DYNAMIC_STATE_SCISSOR"/>
    </enums>
    <feature api="vulkan" name="VK_VERSION_1_3" number="1.3">
        <require>
            <enum extends="VkDynamicState" extnumber="268" offset="0" name="VK_DYNAMIC_STATE_CULL_MODE"/>
        </require>
    </feature>
    <extensions>
        <extension name="VK_NV_clip_space_w_scaling" number="88" supported="vulkan">
            <require>
                <enum extends="VkDynamicState" offset="0" name="VK_DYNAMIC_STATE_VIEWPORT_W_SCALING_NV"/>
            </require>
        </extension>
        <extension name="VK_EXT_extended_dynamic_state" number="268" supported="vulkan">
            <require>
                <enum extends="VkDynamicState" offset="0" name="VK_DYNAMIC_STATE_CULL_MODE_EXT" alias="VK_DYNAMIC_STATE_CULL_MODE"/>
            </require>
        </extension>
    </extensions>
</registry>`

func TestParseCoreGroups(t *testing.T) {
	t.Parallel()

	reg, err := Parse([]byte(coreOnlyXML), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, reg.Groups, 2)

	group, ok := reg.Group("VkDynamicState")
	require.True(t, ok)
	require.Len(t, group.Members, 3)
	assert.Equal(t, "VK_DYNAMIC_STATE_VIEWPORT", group.Members[0].Name)
	assert.Equal(t, "VK_DYNAMIC_STATE_SCISSOR", group.Members[1].Name)
	assert.Equal(t, "VK_DYNAMIC_STATE_LINE_WIDTH", group.Members[2].Name)
	assert.Equal(t, "2", group.Members[2].Value)
	assert.False(t, group.Members[0].IsAlias())

	_, ok = reg.Group("VkFrontFace")
	assert.False(t, ok)
}

func TestParseMergesFeaturesAndExtensions(t *testing.T) {
	t.Parallel()

	reg, err := Parse([]byte(mergedXML), DefaultOptions())
	require.NoError(t, err)

	group, ok := reg.Group("VkDynamicState")
	require.True(t, ok)
	require.Len(t, group.Members, 5)

	names := make([]string, len(group.Members))
	for i, m := range group.Members {
		names[i] = m.Name
	}
	assert.Equal(t, []string{
		"VK_DYNAMIC_STATE_VIEWPORT",
		"VK_DYNAMIC_STATE_SCISSOR",
		"VK_DYNAMIC_STATE_CULL_MODE",
		"VK_DYNAMIC_STATE_VIEWPORT_W_SCALING_NV",
		"VK_DYNAMIC_STATE_CULL_MODE_EXT",
	}, names)

	// Feature enumerants carry their own extnumber.
	assert.Equal(t, "1000267000", group.Members[2].Value)
	// Extension enumerants inherit the extension number.
	assert.Equal(t, "1000087000", group.Members[3].Value)

	alias := group.Members[4]
	assert.True(t, alias.IsAlias())
	assert.Equal(t, "VK_DYNAMIC_STATE_CULL_MODE", alias.Alias)
}

func TestParseAPIFiltering(t *testing.T) {
	t.Parallel()

	const doc = `<registry>
    <enums name="VkDynamicState" type="enum">
        <enum value="0" name="VK_DYNAMIC_STATE_VIEWPORT"/>
    </enums>
    <feature api="vulkansc" name="VKSC_VERSION_1_0" number="1.0">
        <require>
            <enum extends="VkDynamicState" extnumber="10" offset="0" name="VK_DYNAMIC_STATE_SC_ONLY"/>
        </require>
    </feature>
    <feature api="vulkan,vulkansc" name="VK_VERSION_1_3" number="1.3">
        <require>
            <enum extends="VkDynamicState" extnumber="268" offset="1" name="VK_DYNAMIC_STATE_FRONT_FACE"/>
        </require>
        <require api="vulkansc">
            <enum extends="VkDynamicState" extnumber="268" offset="2" name="VK_DYNAMIC_STATE_SC_REQUIRE"/>
        </require>
    </feature>
    <extensions>
        <extension name="VK_TEST_disabled" number="7" supported="disabled">
            <require>
                <enum extends="VkDynamicState" offset="0" name="VK_DYNAMIC_STATE_DISABLED"/>
            </require>
        </extension>
        <extension name="VK_TEST_sc_only" number="8" supported="vulkansc">
            <require>
                <enum extends="VkDynamicState" offset="0" name="VK_DYNAMIC_STATE_SC_EXT"/>
            </require>
        </extension>
    </extensions>
</registry>`

	reg, err := Parse([]byte(doc), Options{API: "vulkan"})
	require.NoError(t, err)

	group, ok := reg.Group("VkDynamicState")
	require.True(t, ok)
	require.Len(t, group.Members, 2)
	assert.Equal(t, "VK_DYNAMIC_STATE_VIEWPORT", group.Members[0].Name)
	assert.Equal(t, "VK_DYNAMIC_STATE_FRONT_FACE", group.Members[1].Name)
}

func TestParseDeduplicatesRequiredEnumerants(t *testing.T) {
	t.Parallel()

	const doc = `<registry>
    <enums name="VkDynamicState" type="enum">
        <enum value="0" name="VK_DYNAMIC_STATE_VIEWPORT"/>
    </enums>
    <extensions>
        <extension name="VK_A" number="10" supported="vulkan">
            <require>
                <enum extends="VkDynamicState" offset="0" name="VK_DYNAMIC_STATE_SHARED"/>
            </require>
        </extension>
        <extension name="VK_B" number="20" supported="vulkan">
            <require>
                <enum extends="VkDynamicState" offset="0" name="VK_DYNAMIC_STATE_SHARED"/>
            </require>
        </extension>
    </extensions>
</registry>`

	reg, err := Parse([]byte(doc), DefaultOptions())
	require.NoError(t, err)

	group, ok := reg.Group("VkDynamicState")
	require.True(t, ok)
	require.Len(t, group.Members, 2)
	// First declaration wins, including its value.
	assert.Equal(t, "1000009000", group.Members[1].Value)
}

func TestRequiredValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		member    xmlEnum
		extNumber string
		want      string
	}{
		{
			name:      "offset with extension number",
			member:    xmlEnum{Offset: "4"},
			extNumber: "268",
			want:      "1000267004",
		},
		{
			name:      "extnumber attribute overrides",
			member:    xmlEnum{Offset: "0", ExtNumber: "456"},
			extNumber: "268",
			want:      "1000455000",
		},
		{
			name:      "negative direction",
			member:    xmlEnum{Offset: "1", Dir: "-"},
			extNumber: "2",
			want:      "-1000001001",
		},
		{
			name:      "explicit value wins",
			member:    xmlEnum{Value: "42", Offset: "4"},
			extNumber: "268",
			want:      "42",
		},
		{
			name:      "bitpos wins over offset",
			member:    xmlEnum{Bitpos: "5", Offset: "4"},
			extNumber: "268",
			want:      "32",
		},
		{
			name:   "alias without value or offset",
			member: xmlEnum{Alias: "VK_DYNAMIC_STATE_CULL_MODE"},
			want:   "",
		},
		{
			name:   "offset without any extension number",
			member: xmlEnum{Offset: "3"},
			want:   "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, requiredValue(tt.member, tt.extNumber))
		})
	}
}

func TestLiteralValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		member xmlEnum
		want   string
	}{
		{"explicit value", xmlEnum{Value: "7"}, "7"},
		{"value wins over bitpos", xmlEnum{Value: "7", Bitpos: "3"}, "7"},
		{"bitpos", xmlEnum{Bitpos: "3"}, "8"},
		{"bitpos high bit", xmlEnum{Bitpos: "40"}, "1099511627776"},
		{"bitpos out of range", xmlEnum{Bitpos: "64"}, ""},
		{"bitpos malformed", xmlEnum{Bitpos: "x"}, ""},
		{"neither", xmlEnum{}, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, literalValue(tt.member))
		})
	}
}

func TestAPIListHas(t *testing.T) {
	t.Parallel()

	tests := []struct {
		list string
		api  string
		want bool
	}{
		{"", "vulkan", true},
		{"vulkan", "vulkan", true},
		{"vulkan,vulkansc", "vulkan", true},
		{"vulkan,vulkansc", "vulkansc", true},
		{"vulkansc", "vulkan", false},
		{"disabled", "vulkan", false},
		{"vulkan, vulkansc", "vulkansc", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, apiListHas(tt.list, tt.api), "list %q api %q", tt.list, tt.api)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		doc    string
		syntax bool
	}{
		{
			name:   "malformed document",
			doc:    `<registry><enums name="X"`,
			syntax: true,
		},
		{
			name: "enums block without name",
			doc:  `<registry><enums type="enum"><enum value="0" name="A"/></enums></registry>`,
		},
		{
			name: "enumerant without name",
			doc:  `<registry><enums name="X" type="enum"><enum value="0"/></enums></registry>`,
		},
		{
			name: "required enumerant without name",
			doc: `<registry><extensions><extension name="VK_A" number="1" supported="vulkan">
                <require><enum extends="X" offset="0"/></require>
            </extension></extensions></registry>`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.doc), DefaultOptions())
			require.Error(t, err)

			var perr *Error
			require.ErrorAs(t, err, &perr)
			if tt.syntax {
				assert.True(t, perr.IsSyntax(), "expected syntax error, got %v", err)
			} else {
				assert.True(t, perr.IsStructure(), "expected structure error, got %v", err)
			}
		})
	}
}
