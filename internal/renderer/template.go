package renderer

// Standalone document shell. Everything is embedded: the output must open
// offline by double-clicking the file, with no network resources.
const htmlHeader = `<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>記事プレビュー</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: -apple-system, BlinkMacSystemFont, "Hiragino Kaku Gothic ProN", sans-serif; line-height: 1.8; color: #333; background: #f5f5f5; }
  .container { max-width: 800px; margin: 0 auto; padding: 40px 24px; background: #fff; min-height: 100vh; box-shadow: 0 0 20px rgba(0,0,0,0.05); }
  h1 { font-size: 1.8em; color: #1a1a1a; border-bottom: 3px solid #2563eb; padding-bottom: 12px; margin-bottom: 24px; line-height: 1.4; }
  h2 { font-size: 1.4em; color: #1a1a1a; margin-top: 48px; margin-bottom: 16px; padding-left: 12px; border-left: 4px solid #2563eb; }
  h3 { font-size: 1.15em; color: #333; margin-top: 32px; margin-bottom: 12px; }
  p { margin-bottom: 16px; }
  img { max-width: 100%; border-radius: 8px; margin: 16px 0; box-shadow: 0 2px 8px rgba(0,0,0,0.12); }
  blockquote { background: #f0f7ff; border-left: 4px solid #2563eb; padding: 16px 20px; margin: 16px 0; border-radius: 0 8px 8px 0; }
  blockquote p:last-child { margin-bottom: 0; }
  ul, ol { margin: 12px 0; padding-left: 28px; }
  li { margin-bottom: 8px; }
  strong { color: #1a1a1a; }
  hr { border: none; border-top: 1px solid #e5e5e5; margin: 40px 0; }
  table { width: 100%; border-collapse: collapse; margin: 16px 0; }
  th, td { border: 1px solid #ddd; padding: 10px 14px; text-align: left; }
  th { background: #f0f7ff; font-weight: bold; }
  .header-bar { background: #2563eb; color: #fff; padding: 12px 24px; text-align: center; font-size: 0.85em; position: sticky; top: 0; z-index: 10; }
</style>
</head>
<body>
<div class="header-bar">動画から自動生成された記事プレビュー</div>
<div class="container">
`

const htmlFooter = `
</div>
</body>
</html>
`
