package main

import (
	"fmt"
	"os"

	vvl "github.com/kearwood/Vulkan-ValidationLayers"
	"github.com/kearwood/Vulkan-ValidationLayers/cpp"
)

const sampleRegistry = `<?xml version="1.0" encoding="UTF-8"?>
<registry>
    <enums name="VkDynamicState" type="enum">
        <enum value="0" name="VK_DYNAMIC_STATE_VIEWPORT"/>
        <enum value="1" name="VK_DYNAMIC_STATE_SCISSOR"/>
        <enum value="2" name="VK_DYNAMIC_STATE_LINE_WIDTH"/>
        <enum value="3" name="VK_DYNAMIC_STATE_DEPTH_BIAS"/>
        <enum value="4" name="VK_DYNAMIC_STATE_BLEND_CONSTANTS"/>
    </enums>
    <feature api="vulkan" name="VK_VERSION_1_3" number="1.3">
        <require>
            <enum extends="VkDynamicState" extnumber="268" offset="0" name="VK_DYNAMIC_STATE_CULL_MODE"/>
            <enum extends="VkDynamicState" extnumber="268" offset="1" name="VK_DYNAMIC_STATE_FRONT_FACE"/>
        </require>
    </feature>
    <extensions>
        <extension name="VK_EXT_extended_dynamic_state" number="268" supported="vulkan">
            <require>
                <enum name="VK_DYNAMIC_STATE_CULL_MODE_EXT" alias="VK_DYNAMIC_STATE_CULL_MODE" extends="VkDynamicState"/>
            </require>
        </extension>
    </extensions>
</registry>
`

func main() {
	// Parse the sample registry
	reg, err := vvl.Parse([]byte(sampleRegistry))
	if err != nil {
		fmt.Println("Parse error:", err)
		os.Exit(1)
	}

	group, ok := reg.Group(vvl.DynamicStateGroup)
	if !ok {
		fmt.Println("Missing group:", vvl.DynamicStateGroup)
		os.Exit(1)
	}

	// Collect the dynamic states
	set := vvl.Collect(reg)

	fmt.Println("=== Dynamic States ===")
	fmt.Printf("Groups: %d\n", len(reg.Groups))
	fmt.Printf("Members: %d\n", len(group.Members))
	fmt.Printf("States: %d\n", set.Len())

	for _, s := range set.States() {
		fmt.Printf("  State[%d]: local=%s, original=%s\n", s.Value, s.Local, s.Original)
	}

	// Render both helper files
	opts := cpp.DefaultOptions()
	for _, target := range []cpp.Target{cpp.TargetHeader, cpp.TargetSource} {
		text, err := vvl.Render(set, target, opts)
		if err != nil {
			fmt.Println("Render error:", err)
			os.Exit(1)
		}

		fmt.Printf("\n=== %s ===\n", target.Filename())
		fmt.Printf("Size: %d bytes\n", len(text))

		err = os.WriteFile(target.Filename(), []byte(text), 0600)
		if err != nil {
			fmt.Println("Write error:", err)
			os.Exit(1)
		}
		fmt.Printf("Saved to %s\n", target.Filename())
	}
}
