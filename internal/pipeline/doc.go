// Package pipeline turns Markdown files into standalone HTML documents.
//
// Stages, in order:
//   - DecodeText: detect the input charset and decode to UTF-8
//   - Preprocessor: normalize line endings, strip the BOM, convert
//     ==highlight== to placeholders, compress blank lines
//   - Converter: Goldmark (GFM, footnotes, chroma highlighting) into a
//     fragment, then wrapped in the assets "page" template with the style
//     sheet and the highlighting CSS inlined
//   - RewriteRelativePaths: relative image and link paths become file://
//     URLs so a browser loading the HTML from a temp file still finds them
//
// PDF output is handled by internal/browser.
package pipeline
