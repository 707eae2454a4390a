// Package tools implements the programs the context menu launches. Each
// tool reads one path, checks it is the kind of file it handles, hands the
// work to one collaborator and writes one artifact next to the input:
//
//	convert_pdf_into_images  report.pdf  -> report-images/Page 1.jpg ...
//	heif_to_jpg              photo.heic  -> photo.jpg
//	markdown_to_html         notes.md    -> notes.html
//	markdown_to_pdf          notes.md    -> notes.pdf
//	remove_background        photo.png   -> photo-NO_BACKGROUND.png
//	generate_info            any path    -> <stem>_info.txt
//
// Collaborators sit behind small interfaces (Rasterizer, ImageDecoder,
// HTMLConverter, PDFRenderer, BackgroundRemover, Inspector) so tests run
// with fakes. Production adapters use go-pdfium, gen2brain/heic, goldmark,
// go-rod and the rembg command line.
package tools
