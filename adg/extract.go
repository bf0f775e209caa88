package adg

import (
	"drumrack/debug"
	"drumrack/kit"
)

// Element names in a Live drum rack preset.
//
//	Ableton > GroupDevicePreset > BranchPresets > DrumBranchPreset[]
//	DrumBranchPreset > ZoneSettings > ReceivingNote@Value
//	DrumBranchPreset > ... > SampleRef > ... > FileRef > RelativePath@Value
const (
	tagBranch        = "DrumBranchPreset"
	tagZoneSettings  = "ZoneSettings"
	tagReceivingNote = "ReceivingNote"
	tagSampleRef     = "SampleRef"
	tagFileRef       = "FileRef"
	tagRelativePath  = "RelativePath"
	tagPathType      = "RelativePathType"
	tagPath          = "Path"
	tagName          = "Name"
)

// Extract returns one mapping per usable drum branch under root, in
// document order. Notes are the vendor notes; nothing is remapped.
func Extract(root *Node, r *Resolver) []kit.Mapping {
	var mappings []kit.Mapping
	for _, branch := range FindAll(root, HasTag(tagBranch)) {
		debug.Log("adg", "found %s", tagBranch)
		if m, ok := extractBranch(branch, r); ok {
			mappings = append(mappings, m)
		}
	}
	debug.Log("adg", "found %d sample mappings", len(mappings))
	return mappings
}

func extractBranch(branch *Node, r *Resolver) (kit.Mapping, bool) {
	note := branch.Child(tagZoneSettings).Child(tagReceivingNote).IntAttr("Value", -1)
	if note < 0 || note > 127 {
		return kit.Mapping{}, false
	}

	path := samplePath(branch, r)
	debug.Log("adg", "branch note=%d samplePath=%s", note, path)
	if path == "" {
		return kit.Mapping{}, false
	}

	m := kit.NewMapping(uint8(note), path)
	debug.Log("adg", "mapped note %d -> %s (exists: %s)", note, m.SampleName, yesNo(r.Exists(path)))
	return m, true
}

// samplePath finds the first SampleRef > FileRef beneath branch and
// resolves its stored path. Returns "" when no usable path is stored.
func samplePath(branch *Node, r *Resolver) string {
	sampleRef := FindFirst(branch, HasTag(tagSampleRef))
	if sampleRef == nil {
		return ""
	}
	fileRef := FindFirst(sampleRef, HasTag(tagFileRef))
	if fileRef == nil {
		return ""
	}

	pathType := fileRef.Child(tagPathType).IntAttr("Value", DefaultPathType)

	raw := fileRef.ChildValue(tagRelativePath)
	if raw == "" {
		raw = fileRef.ChildValue(tagPath)
	}
	if raw == "" {
		raw = fileRef.ChildValue(tagName)
	}
	if raw == "" {
		return ""
	}

	resolved := r.Resolve(raw, pathType)

	// Presets often store a redundant absolute Path next to the relative
	// one; prefer it when only it exists.
	if !r.Exists(resolved) {
		if abs := fileRef.ChildValue(tagPath); r.Exists(abs) {
			return abs
		}
	}
	return resolved
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
