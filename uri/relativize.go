/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uri

import "strings"

// Relativize computes a reference that, when Resolved against base, yields
// target: the inverse of Resolve. Unlike a strict relativizer that errors
// on a dot-segment path, this never errors: it falls back to returning
// target unchanged whenever no shorter reference can be produced, whether
// because target's path carries dot segments or because base and target
// diverge in scheme or authority.
func Relativize(base, target Uri) Uri {
	for _, segment := range strings.Split(target.path, "/") {
		if segment == "." || segment == ".." {
			return target
		}
	}

	if base.scheme != target.scheme || base.hasScheme != target.hasScheme {
		return target
	}

	if base.hasAuthority != target.hasAuthority || (base.hasAuthority && !sameAuthority(base, target)) {
		return target
	}

	if target.path == "" && base.path != "" {
		if !target.hasAuthority {
			return target
		}
		return stripScheme(target)
	}

	if base.path == target.path {
		return relativizeForSamePath(base, target)
	}

	if !base.hasAuthority {
		return relativizeForNoAuthority(base, target)
	}

	return relativizeWithAuthority(base, target)
}

func sameAuthority(a, b Uri) bool {
	return a.hasUserinfo == b.hasUserinfo && a.user == b.user &&
		a.hasPassword == b.hasPassword && a.password == b.password &&
		a.host == b.host && a.hostBracketed == b.hostBracketed &&
		a.hasPort == b.hasPort && a.port == b.port
}

// stripScheme returns target with its scheme removed, yielding a
// scheme-relative ("//host/path...") reference.
func stripScheme(target Uri) Uri {
	t := target
	t.hasScheme = false
	t.scheme = ""
	return t
}

// buildRelativeRef assembles a relative-path reference from relPath plus
// target's query and fragment, guarding against the first-segment colon
// ambiguity by prefixing "./" when the first segment contains a ':'.
func buildRelativeRef(relPath string, target Uri) Uri {
	if !strings.HasPrefix(relPath, ".") && !strings.HasPrefix(relPath, "/") {
		if colon := strings.IndexByte(relPath, ':'); colon != -1 {
			slash := strings.IndexByte(relPath, '/')
			if slash == -1 || colon < slash {
				relPath = "./" + relPath
			}
		}
	}
	return Uri{
		path:        relPath,
		hasQuery:    target.hasQuery,
		query:       target.query,
		hasFragment: target.hasFragment,
		fragment:    target.fragment,
	}
}

// relativizeWithAuthority handles the case where both base and target carry
// an authority and have differing paths, walking up from base's directory.
func relativizeWithAuthority(base, target Uri) Uri {
	basePath, targetPath := base.path, target.path
	if basePath == "" {
		basePath = "/"
	}
	if targetPath == "" {
		targetPath = "/"
	}

	baseDir := basePath
	if lastSlash := strings.LastIndex(baseDir, "/"); lastSlash > -1 {
		baseDir = baseDir[:lastSlash+1]
	}

	var baseSegs []string
	if baseDir != "/" {
		baseSegs = strings.Split(strings.Trim(baseDir, "/"), "/")
	}
	var targetSegs []string
	if targetPath != "/" {
		targetSegs = strings.Split(strings.TrimPrefix(targetPath, "/"), "/")
	}

	commonLen := 0
	for commonLen < len(baseSegs) && commonLen < len(targetSegs) && baseSegs[commonLen] == targetSegs[commonLen] {
		commonLen++
	}

	var b strings.Builder
	for i := commonLen; i < len(baseSegs); i++ {
		b.WriteString("../")
	}
	b.WriteString(strings.Join(targetSegs[commonLen:], "/"))
	relPath := b.String()

	if relPath == "" {
		if baseDir == "/" {
			// base has no real directory to be relative to (an empty or
			// root path): the absolute path is at least as short as any
			// dot-relative form and it is what a caller starting from a
			// bare authority reference would expect.
			return buildRelativeRef(targetPath, target)
		}
		if lastSlash := strings.LastIndex(targetPath, "/"); lastSlash > -1 && targetPath[lastSlash+1:] == "" {
			return buildRelativeRef(".", target)
		}
	}

	return buildRelativeRef(relPath, target)
}

// relativizeForNoAuthority handles relativization when both base and target
// lack an authority.
func relativizeForNoAuthority(base, target Uri) Uri {
	basePath, targetPath := base.path, target.path

	baseSegs := strings.Split(basePath, "/")
	targetSegs := strings.Split(targetPath, "/")

	var baseDirSegs []string
	if len(baseSegs) > 0 {
		baseDirSegs = baseSegs[:len(baseSegs)-1]
	}

	commonSegs := 0
	for commonSegs < len(baseDirSegs) && commonSegs < len(targetSegs) && baseDirSegs[commonSegs] == targetSegs[commonSegs] {
		commonSegs++
	}

	var b strings.Builder
	for i := commonSegs; i < len(baseDirSegs); i++ {
		b.WriteString("../")
	}
	b.WriteString(strings.Join(targetSegs[commonSegs:], "/"))
	relPath := b.String()

	if relPath == "" && basePath != targetPath {
		relPath = "."
	}

	return buildRelativeRef(relPath, target)
}

// relativizeForSamePath handles the case where base and target paths are
// identical, differing only (if at all) in query and fragment.
func relativizeForSamePath(base, target Uri) Uri {
	if base.hasQuery == target.hasQuery && base.query == target.query {
		return Uri{hasFragment: target.hasFragment, fragment: target.fragment}
	}

	if !target.hasQuery && base.hasQuery {
		return relativizeForSamePathWithEmptyTargetQuery(target)
	}

	return buildRelativeRef("", target)
}

// relativizeForSamePathWithEmptyTargetQuery handles the edge case where
// paths match but target has no query while base does: a bare path
// reference would spuriously inherit base's query upon resolution, so this
// must emit at least "." or a scheme-relative reference.
func relativizeForSamePathWithEmptyTargetQuery(target Uri) Uri {
	if !target.hasAuthority {
		return target
	}

	if target.path != "" {
		relPath := target.path
		if lastSlash := strings.LastIndex(relPath, "/"); lastSlash > -1 {
			relPath = relPath[lastSlash+1:]
		}
		if relPath == "" {
			relPath = "."
		}
		return buildRelativeRef(relPath, target)
	}

	return stripScheme(target)
}
